package catalog

import "github.com/theirongolddev/mealtab/internal/model"

// DefaultClosedDays are the dining-hall holiday closures seeded into a
// fresh install (Thanksgiving break).
var DefaultClosedDays = []string{"2025-11-27", "2025-11-28"}

var defaultSemester = model.Semester{
	ID:        1,
	Name:      "Fall 2025",
	StartDate: "2025-08-25",
	EndDate:   "2025-12-14",
}

var defaultVendors = []model.Vendor{
	{ID: 1, Name: "Lombardi - Mozzie's"},
	{ID: 2, Name: "Lombardi - Copperhead Jacks"},
	{ID: 3, Name: "Lombardi - Urban Hen"},
	{ID: 4, Name: "Lombardi - Sushi by Faith"},
	{ID: 5, Name: "Lombardi - Rice It Up"},
	{ID: 6, Name: "Lombardi - Drinks"},
	{ID: 7, Name: "Lombardi - Desserts"},
	{ID: 8, Name: "Lombardi - Pre-Packaged Meals"},
	{ID: 9, Name: "Lombardi - Snacks"},
	{ID: 10, Name: "Starbucks"},
	{ID: 11, Name: "Louie's"},
}

var defaultCategories = []model.Category{
	{ID: "meal", Label: "Meals / Entrees"},
	{ID: "drink", Label: "Drinks"},
	{ID: "dessert", Label: "Desserts"},
	{ID: "snack", Label: "Snacks"},
	{ID: "prepackaged", Label: "Pre-Packaged Meals"},
}

var defaultItems = []model.Item{
	{ID: 1, Name: "Mozzie's Pizza", CategoryID: "meal", DefaultPrice: 11.5},
	{ID: 2, Name: "Hamburger", CategoryID: "meal", DefaultPrice: 9.0},
	{ID: 3, Name: "Coffee", CategoryID: "drink", DefaultPrice: 5.0},
	{ID: 4, Name: "Soft Drink", CategoryID: "drink", DefaultPrice: 3.5},
	{ID: 5, Name: "Bag of Chips", CategoryID: "snack", DefaultPrice: 4.0},
	{ID: 6, Name: "Hershey's Ice Cream Pint", CategoryID: "dessert", DefaultPrice: 8.0},
}

// Default returns the built-in campus catalog. The semester window may be
// overridden before use (config takes precedence over the seed data).
func Default() *Catalog {
	return New(defaultSemester, defaultVendors, defaultCategories, defaultItems)
}
