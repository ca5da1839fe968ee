package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// Product lookups filter on the stored "productId" field; this pins the
// struct tag so the filters keep matching seeded documents.
func TestProductStoredUnderProductIDField(t *testing.T) {
	raw, err := bson.Marshal(Product{ProductID: "21", Name: "Sunflower Bouquet"})
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.Equal(t, "21", doc["productId"])
	assert.NotContains(t, doc, "id")
}
