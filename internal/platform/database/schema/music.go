package schema

// MusicTable represents the 'music' table
type MusicTable struct {
	Table        string
	ID           string
	Title        string
	Artist       string
	Album        string
	Cover        string
	Year         string
	Score        string
	CoverOffsetY string
	CreatedAt    string
}

// Music is the schema definition for the music table
var Music = MusicTable{
	Table:        "music",
	ID:           "id",
	Title:        "title",
	Artist:       "artist",
	Album:        "album",
	Cover:        "cover",
	Year:         "year",
	Score:        "score",
	CoverOffsetY: "cover_offset_y",
	CreatedAt:    "created_at",
}

func (t MusicTable) Columns() []string {
	return []string{t.ID, t.Title, t.Artist, t.Album, t.Cover, t.Year, t.Score, t.CoverOffsetY, t.CreatedAt}
}
