package cart

import (
	"testing"

	"everbloom/models"
)

func item(id string, price int64, qty int) models.CartItem {
	return models.CartItem{ItemID: id, Name: "Item " + id, Price: price, Quantity: qty}
}

func TestAddIncrementsExistingItem(t *testing.T) {
	items := []models.CartItem{item("A", 100, 1)}

	items = Add(items, item("A", 100, 2))

	if len(items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", items[0].Quantity)
	}
	if got := Subtotal(items); got != 300 {
		t.Errorf("expected subtotal 300, got %d", got)
	}
}

func TestAddAppendsNewItem(t *testing.T) {
	items := []models.CartItem{item("A", 100, 1)}
	items = Add(items, item("B", 250, 2))

	if len(items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(items))
	}
	if got := Subtotal(items); got != 600 {
		t.Errorf("expected subtotal 600, got %d", got)
	}
}

func TestAddDoesNotMutateInput(t *testing.T) {
	original := []models.CartItem{item("A", 100, 1)}
	Add(original, item("A", 100, 2))

	if original[0].Quantity != 1 {
		t.Errorf("input slice was mutated: quantity became %d", original[0].Quantity)
	}
}

func TestSetQuantityReplaces(t *testing.T) {
	items := []models.CartItem{item("A", 100, 1)}
	items = SetQuantity(items, "A", 5)

	if items[0].Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", items[0].Quantity)
	}
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	viaSet := SetQuantity([]models.CartItem{item("A", 100, 1), item("B", 50, 2)}, "A", 0)
	viaRemove := Remove([]models.CartItem{item("A", 100, 1), item("B", 50, 2)}, "A")

	if len(viaSet) != len(viaRemove) {
		t.Fatalf("setQuantity(0) and remove diverge: %d vs %d items", len(viaSet), len(viaRemove))
	}
	for i := range viaSet {
		if viaSet[i] != viaRemove[i] {
			t.Errorf("item %d differs: %+v vs %+v", i, viaSet[i], viaRemove[i])
		}
	}
}

func TestSetQuantityNegativeRemoves(t *testing.T) {
	items := SetQuantity([]models.CartItem{item("A", 100, 1)}, "A", -3)
	if len(items) != 0 {
		t.Errorf("expected empty cart, got %d items", len(items))
	}
}

func TestRemoveMissingIsNoop(t *testing.T) {
	items := []models.CartItem{item("A", 100, 1)}
	items = Remove(items, "nope")

	if len(items) != 1 {
		t.Errorf("expected 1 item after removing absent id, got %d", len(items))
	}
}

func TestTotalItemsSumsQuantities(t *testing.T) {
	var items []models.CartItem
	items = Add(items, item("A", 100, 2))
	items = Add(items, item("B", 50, 1))
	items = Add(items, item("A", 100, 1))
	items = SetQuantity(items, "B", 4)
	items = Remove(items, "missing")

	want := 0
	for _, it := range items {
		want += it.Quantity
	}
	if got := TotalItems(items); got != want {
		t.Errorf("TotalItems = %d, sum of quantities = %d", got, want)
	}
	if got := TotalItems(items); got != 7 {
		t.Errorf("expected 7 total items, got %d", got)
	}
}

func TestSubtotalRecomputedAfterEveryMutation(t *testing.T) {
	items := []models.CartItem{item("A", 100, 1)}
	if got := Subtotal(items); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}

	items = SetQuantity(items, "A", 3)
	if got := Subtotal(items); got != 300 {
		t.Errorf("expected 300 after setQuantity, got %d", got)
	}

	items = Remove(items, "A")
	if got := Subtotal(items); got != 0 {
		t.Errorf("expected 0 after remove, got %d", got)
	}
}
