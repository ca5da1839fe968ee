package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeLowercasesAndSplits(t *testing.T) {
	assert.Equal(t, []string{"satin", "ribbon", "rose"}, Tokenize("Satin Ribbon Rose"))
}

func TestTokenizeDropsStopWords(t *testing.T) {
	assert.Equal(t, []string{"bouquet", "weddings"}, Tokenize("a bouquet for the weddings"))
}

func TestTokenizeDeduplicates(t *testing.T) {
	assert.Equal(t, []string{"rose", "red"}, Tokenize("rose Red ROSE red"))
}

func TestTokenizeEmptyInput(t *testing.T) {
	assert.Nil(t, Tokenize(""))
	assert.Nil(t, Tokenize("   "))
}

func TestTokenizePunctuation(t *testing.T) {
	assert.Equal(t, []string{"sci", "fi", "collection"}, Tokenize("Sci-Fi Collection"))
}
