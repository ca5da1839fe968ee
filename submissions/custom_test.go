package submissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomTotalBaseSizes(t *testing.T) {
	assert.Equal(t, int64(999), customTotal("small", nil))
	assert.Equal(t, int64(1499), customTotal("medium", nil))
	assert.Equal(t, int64(1999), customTotal("large", nil))
	assert.Equal(t, int64(2499), customTotal("extra-large", nil))
}

func TestCustomTotalWithAddons(t *testing.T) {
	// medium 1499 + vase 499 + chocolates 299
	assert.Equal(t, int64(2297), customTotal("medium", []string{"vase", "chocolates"}))
	// ribbon and card are both 99
	assert.Equal(t, int64(1197), customTotal("small", []string{"ribbon", "card"}))
}

func TestCustomTotalUnknownAddonAddsNothing(t *testing.T) {
	assert.Equal(t, customTotal("large", nil), customTotal("large", []string{"confetti"}))
}

func TestContactValidationPatterns(t *testing.T) {
	assert.True(t, emailRegex.MatchString("asha@example.com"))
	assert.False(t, emailRegex.MatchString("asha@example"))
	assert.True(t, phoneRegex.MatchString("9876543210"))
	assert.False(t, phoneRegex.MatchString("98765"))
}
