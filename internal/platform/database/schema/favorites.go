package schema

// FavoritesTable represents the 'favorites' table
type FavoritesTable struct {
	Table     string
	SortOrder string
	IsSaga    string
	Title     string
	Cover     string
}

// Favorites is the schema definition for the favorites table.
// SortOrder is dense and zero-based; Cover is present only for saga rows.
var Favorites = FavoritesTable{
	Table:     "favorites",
	SortOrder: "sort_order",
	IsSaga:    "is_saga",
	Title:     "title",
	Cover:     "cover",
}
