package schema

// AuthorTable represents the 'authors' table
type AuthorTable struct {
	Table         string
	ID            string
	Username      string
	DisplayName   string
	Bio           string
	Avatar        string
	JoinedDate    string
	StoryCount    string
	TotalReads    string
	TotalComments string
	CreatedAt     string
	UpdatedAt     string
}

// Author is the schema definition for authors
var Author = AuthorTable{
	Table:         "authors",
	ID:            "id",
	Username:      "username",
	DisplayName:   "display_name",
	Bio:           "bio",
	Avatar:        "avatar",
	JoinedDate:    "joined_date",
	StoryCount:    "story_count",
	TotalReads:    "total_reads",
	TotalComments: "total_comments",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

// Columns returns all column names in scan order
func (t AuthorTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.DisplayName, t.Bio, t.Avatar, t.JoinedDate,
		t.StoryCount, t.TotalReads, t.TotalComments, t.CreatedAt, t.UpdatedAt,
	}
}
