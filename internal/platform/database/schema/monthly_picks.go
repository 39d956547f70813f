package schema

// MonthlyPicksTable represents the 'monthly_picks' table
type MonthlyPicksTable struct {
	Table     string
	Month     string
	WorkTitle string
	Cover     string
}

// MonthlyPicks is the schema definition for the monthly_picks table
var MonthlyPicks = MonthlyPicksTable{
	Table:     "monthly_picks",
	Month:     "month",
	WorkTitle: "work_title",
	Cover:     "cover",
}

// MonthlyCharsTable represents the 'monthly_chars' table
type MonthlyCharsTable struct {
	Table    string
	Month    string
	CharName string
	Cover    string
}

// MonthlyChars is the schema definition for the monthly_chars table
var MonthlyChars = MonthlyCharsTable{
	Table:    "monthly_chars",
	Month:    "month",
	CharName: "char_name",
	Cover:    "cover",
}
