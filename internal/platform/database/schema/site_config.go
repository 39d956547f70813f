package schema

// SiteConfigTable represents the singleton 'config' table
type SiteConfigTable struct {
	Table      string
	ID         string
	Username   string
	Bio        string
	DecoPairs  string
	DecoGroups string
}

// SiteConfig is the schema definition for the config table.
// The table holds exactly one row with id = 1.
var SiteConfig = SiteConfigTable{
	Table:      "config",
	ID:         "id",
	Username:   "username",
	Bio:        "bio",
	DecoPairs:  "deco_pairs",
	DecoGroups: "deco_groups",
}
