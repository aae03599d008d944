// Package catalog holds the process-wide immutable reference data:
// the semester window plus the vendors, categories, and items students
// can purchase. Loaded once, read everywhere.
package catalog

import (
	"fmt"

	"github.com/theirongolddev/mealtab/internal/model"
)

// Catalog bundles the reference data with id-indexed lookups.
type Catalog struct {
	Semester   model.Semester
	Vendors    []model.Vendor
	Categories []model.Category
	Items      []model.Item

	vendorByID   map[int]model.Vendor
	categoryByID map[string]model.Category
	itemByID     map[int]model.Item
}

// New builds a Catalog with lookup indexes over the given reference data.
func New(sem model.Semester, vendors []model.Vendor, categories []model.Category, items []model.Item) *Catalog {
	c := &Catalog{
		Semester:     sem,
		Vendors:      vendors,
		Categories:   categories,
		Items:        items,
		vendorByID:   make(map[int]model.Vendor, len(vendors)),
		categoryByID: make(map[string]model.Category, len(categories)),
		itemByID:     make(map[int]model.Item, len(items)),
	}
	for _, v := range vendors {
		c.vendorByID[v.ID] = v
	}
	for _, cat := range categories {
		c.categoryByID[cat.ID] = cat
	}
	for _, it := range items {
		c.itemByID[it.ID] = it
	}
	return c
}

// Vendor looks up a vendor by id.
func (c *Catalog) Vendor(id int) (model.Vendor, bool) {
	v, ok := c.vendorByID[id]
	return v, ok
}

// Category looks up a category by id.
func (c *Catalog) Category(id string) (model.Category, bool) {
	cat, ok := c.categoryByID[id]
	return cat, ok
}

// Item looks up an item by id.
func (c *Catalog) Item(id int) (model.Item, bool) {
	it, ok := c.itemByID[id]
	return it, ok
}

// VendorLabel resolves a vendor name, falling back to "Vendor <id>"
// for unknown references.
func (c *Catalog) VendorLabel(id int) string {
	if v, ok := c.vendorByID[id]; ok {
		return v.Name
	}
	return fmt.Sprintf("Vendor %d", id)
}

// ItemLabel resolves an item name, falling back to "Item <id>".
func (c *Catalog) ItemLabel(id int) string {
	if it, ok := c.itemByID[id]; ok {
		return it.Name
	}
	return fmt.Sprintf("Item %d", id)
}

// CategoryLabel resolves a category label, falling back to the raw id.
func (c *Catalog) CategoryLabel(id string) string {
	if cat, ok := c.categoryByID[id]; ok {
		return cat.Label
	}
	return id
}
