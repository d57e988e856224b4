package domain

import "slices"

// Category classifies a local experience. Values are stored verbatim.
type Category string

const (
	CategoryAdventure Category = "Adventure"
	CategoryFood      Category = "Food"
	CategoryWellness  Category = "Wellness"
	CategoryCulture   Category = "Culture"
	CategoryNature    Category = "Nature"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	return slices.Contains(AllCategories(), c)
}

// AllCategories returns every known category in display order.
func AllCategories() []Category {
	return []Category{CategoryAdventure, CategoryFood, CategoryWellness, CategoryCulture, CategoryNature}
}

// SortOrder selects how a list of experiences is ranked.
type SortOrder string

const (
	// SortNewest orders by created_at DESC, id ASC.
	SortNewest SortOrder = "NEWEST"
	// SortNearest orders by distance ASC, id ASC. Requires an origin.
	SortNearest SortOrder = "NEAREST"
)

func (s SortOrder) String() string { return string(s) }
