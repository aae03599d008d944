package catalog

import "testing"

func TestDefaultCatalogLookups(t *testing.T) {
	c := Default()

	v, ok := c.Vendor(10)
	if !ok || v.Name != "Starbucks" {
		t.Fatalf("Vendor(10) = %+v ok=%v, want Starbucks", v, ok)
	}

	it, ok := c.Item(1)
	if !ok || it.DefaultPrice != 11.5 || it.CategoryID != "meal" {
		t.Fatalf("Item(1) = %+v ok=%v, want Mozzie's Pizza at 11.50", it, ok)
	}

	if _, ok := c.Item(999); ok {
		t.Fatal("Item(999) resolved, want missing")
	}
}

func TestLabelFallbacks(t *testing.T) {
	c := Default()

	if got := c.VendorLabel(11); got != "Louie's" {
		t.Fatalf("VendorLabel(11) = %q, want Louie's", got)
	}
	if got := c.VendorLabel(99); got != "Vendor 99" {
		t.Fatalf("VendorLabel(99) = %q, want \"Vendor 99\"", got)
	}
	if got := c.ItemLabel(42); got != "Item 42" {
		t.Fatalf("ItemLabel(42) = %q, want \"Item 42\"", got)
	}
	if got := c.CategoryLabel("meal"); got != "Meals / Entrees" {
		t.Fatalf("CategoryLabel(meal) = %q", got)
	}
	if got := c.CategoryLabel("mystery"); got != "mystery" {
		t.Fatalf("CategoryLabel fallback = %q, want raw id", got)
	}
}
