package utils

import "testing"

func TestContainsIgnoreCase(t *testing.T) {
	if !ContainsIgnoreCase("Enchanted Rose Bouquet", "ROSE") {
		t.Error("expected match regardless of case")
	}
	if ContainsIgnoreCase("Enchanted Rose Bouquet", "tulip") {
		t.Error("did not expect a match")
	}
}

func TestGenerateNameIsLowercase(t *testing.T) {
	name := GenerateName(12)
	if len(name) != 12 {
		t.Fatalf("expected length 12, got %d", len(name))
	}
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			t.Fatalf("expected lowercase id, got %q", name)
		}
	}
}
