package schema

// WorksTable represents the 'works' table
type WorksTable struct {
	Table        string
	ID           string
	Title        string
	Cover        string
	Year         string
	Type         string
	Status       string
	Score        string
	StartDate    string
	FinishDate   string
	CoverOffsetY string
	PrivateNotes string
	CreatedAt    string
	UpdatedAt    string
}

// Works is the schema definition for the works table
var Works = WorksTable{
	Table:        "works",
	ID:           "id",
	Title:        "title",
	Cover:        "cover",
	Year:         "year",
	Type:         "type",
	Status:       "status",
	Score:        "score",
	StartDate:    "start_date",
	FinishDate:   "finish_date",
	CoverOffsetY: "cover_offset_y",
	PrivateNotes: "private_notes",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}

func (t WorksTable) Columns() []string {
	return []string{t.ID, t.Title, t.Cover, t.Year, t.Type, t.Status, t.Score, t.StartDate, t.FinishDate, t.CoverOffsetY, t.PrivateNotes, t.CreatedAt, t.UpdatedAt}
}
