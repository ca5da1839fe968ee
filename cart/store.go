package cart

import "everbloom/models"

// Pure operations over the in-memory line-item array. Handlers load the
// current array, apply one of these, and write the whole result back.

// Add increments the quantity when the item is already present, otherwise
// appends. The incoming quantity is added as-is.
func Add(items []models.CartItem, incoming models.CartItem) []models.CartItem {
	for i := range items {
		if items[i].ItemID == incoming.ItemID {
			out := make([]models.CartItem, len(items))
			copy(out, items)
			out[i].Quantity += incoming.Quantity
			return out
		}
	}
	out := make([]models.CartItem, len(items), len(items)+1)
	copy(out, items)
	return append(out, incoming)
}

// SetQuantity replaces the quantity for the item; n <= 0 removes it.
func SetQuantity(items []models.CartItem, id string, n int) []models.CartItem {
	if n <= 0 {
		return Remove(items, id)
	}
	out := make([]models.CartItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].ItemID == id {
			out[i].Quantity = n
		}
	}
	return out
}

// Remove deletes the matching entry; an absent id is a silent no-op.
func Remove(items []models.CartItem, id string) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ItemID != id {
			out = append(out, it)
		}
	}
	return out
}

// TotalItems is the sum of quantities, recomputed on every call.
func TotalItems(items []models.CartItem) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// Subtotal is the sum of price times quantity, recomputed on every call.
func Subtotal(items []models.CartItem) int64 {
	var total int64
	for _, it := range items {
		total += it.Price * int64(it.Quantity)
	}
	return total
}
