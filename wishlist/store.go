package wishlist

import "everbloom/models"

// Add is idempotent: an identifier already on the list is left alone.
func Add(items []models.WishlistItem, incoming models.WishlistItem) []models.WishlistItem {
	if Contains(items, incoming.ItemID) {
		return items
	}
	out := make([]models.WishlistItem, len(items), len(items)+1)
	copy(out, items)
	return append(out, incoming)
}

// Remove deletes the matching entry; an absent id is a silent no-op.
func Remove(items []models.WishlistItem, id string) []models.WishlistItem {
	out := make([]models.WishlistItem, 0, len(items))
	for _, it := range items {
		if it.ItemID != id {
			out = append(out, it)
		}
	}
	return out
}

func Contains(items []models.WishlistItem, id string) bool {
	for _, it := range items {
		if it.ItemID == id {
			return true
		}
	}
	return false
}
