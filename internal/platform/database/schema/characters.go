package schema

// CharactersTable represents the 'characters' table
type CharactersTable struct {
	Table        string
	ID           string
	Title        string
	Cover        string
	SourceID     string
	CoverOffsetY string
	Category     string
	SortOrder    string
	CreatedAt    string
}

// Characters is the schema definition for the characters table.
// SortOrder is meaningful only within the hall_of_fame category.
var Characters = CharactersTable{
	Table:        "characters",
	ID:           "id",
	Title:        "title",
	Cover:        "cover",
	SourceID:     "source_id",
	CoverOffsetY: "cover_offset_y",
	Category:     "category",
	SortOrder:    "sort_order",
	CreatedAt:    "created_at",
}

func (t CharactersTable) Columns() []string {
	return []string{t.ID, t.Title, t.Cover, t.SourceID, t.CoverOffsetY, t.Category, t.SortOrder, t.CreatedAt}
}
