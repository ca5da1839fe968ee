package cart

import (
	"strings"
	"testing"
)

func TestDecodeAddItemDefaultsQuantityToOne(t *testing.T) {
	got, err := decodeAddItem(strings.NewReader(`{"id":"1","name":"Rose Bouquet","price":1499}`))
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.Quantity != 1 {
		t.Errorf("expected default quantity 1, got %d", got.Quantity)
	}
	if got.ItemID != "1" || got.Price != 1499 {
		t.Errorf("unexpected item %+v", got)
	}
}

func TestDecodeAddItemKeepsExplicitQuantity(t *testing.T) {
	got, err := decodeAddItem(strings.NewReader(`{"id":"1","name":"Rose Bouquet","price":1499,"quantity":4}`))
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.Quantity != 4 {
		t.Errorf("expected quantity 4, got %d", got.Quantity)
	}
}

func TestDecodeAddItemExplicitZeroStaysZero(t *testing.T) {
	// the handler rejects zero; only an absent quantity means one
	got, err := decodeAddItem(strings.NewReader(`{"id":"1","name":"Rose Bouquet","price":1499,"quantity":0}`))
	if err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", got.Quantity)
	}
}
