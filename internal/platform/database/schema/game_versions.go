package schema

// GameVersionsTable represents the 'game_versions' table
type GameVersionsTable struct {
	Table        string
	MainID       string
	EditionID    string
	MainTitle    string
	EditionTitle string
	VersionType  string
}

// GameVersions is the schema definition for the game_versions table.
// EditionID carries a unique constraint: an edition belongs to exactly
// one main game.
var GameVersions = GameVersionsTable{
	Table:        "game_versions",
	MainID:       "main_igdb_id",
	EditionID:    "edition_igdb_id",
	MainTitle:    "main_title",
	EditionTitle: "edition_title",
	VersionType:  "version_type",
}
