package wishlist

import (
	"testing"

	"everbloom/models"
)

func entry(id string) models.WishlistItem {
	return models.WishlistItem{ItemID: id, Name: "Item " + id, Price: 100}
}

func TestAddIsIdempotent(t *testing.T) {
	var items []models.WishlistItem
	items = Add(items, entry("A"))
	items = Add(items, entry("A"))

	if len(items) != 1 {
		t.Errorf("expected 1 entry after double add, got %d", len(items))
	}
}

func TestAddKeepsDistinctEntries(t *testing.T) {
	var items []models.WishlistItem
	items = Add(items, entry("A"))
	items = Add(items, entry("B"))

	if len(items) != 2 {
		t.Errorf("expected 2 entries, got %d", len(items))
	}
}

func TestRemove(t *testing.T) {
	items := Add(nil, entry("A"))
	items = Remove(items, "A")
	if len(items) != 0 {
		t.Errorf("expected empty wishlist, got %d entries", len(items))
	}

	// absent id is a silent no-op
	items = Remove(items, "A")
	if len(items) != 0 {
		t.Errorf("expected empty wishlist, got %d entries", len(items))
	}
}

func TestContains(t *testing.T) {
	items := Add(nil, entry("A"))
	if !Contains(items, "A") {
		t.Error("expected Contains to find A")
	}
	if Contains(items, "B") {
		t.Error("did not expect Contains to find B")
	}
}
