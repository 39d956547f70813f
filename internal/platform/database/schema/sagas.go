package schema

// SagasTable represents the 'sagas' table
type SagasTable struct {
	Table      string
	Name       string
	WorkTitles string
	UpdatedAt  string
}

// Sagas is the schema definition for the sagas table.
// Saga identity is the name itself; members are an ordered title array.
var Sagas = SagasTable{
	Table:      "sagas",
	Name:       "name",
	WorkTitles: "work_titles",
	UpdatedAt:  "updated_at",
}
