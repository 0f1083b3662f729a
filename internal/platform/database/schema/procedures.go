package schema

import "strings"

// Stored procedures that bump view counters atomically on the server.
const (
	ProcIncrementStoryViews = "increment_story_views"
	ProcIncrementPartViews  = "increment_part_views"
)

// List joins column names for a SELECT list, optionally qualified by alias.
func List(alias string, columns []string) string {
	if alias == "" {
		return strings.Join(columns, ", ")
	}
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}
