package schema

// CategoryTable represents the 'categories' table
type CategoryTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
}

// Category is the schema definition for categories
var Category = CategoryTable{
	Table:     "categories",
	ID:        "id",
	Name:      "name",
	CreatedAt: "created_at",
}

// Columns returns all column names in scan order
func (t CategoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.CreatedAt}
}
