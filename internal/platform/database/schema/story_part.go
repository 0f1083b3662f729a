package schema

// StoryPartTable represents the 'story_parts' table
type StoryPartTable struct {
	Table         string
	ID            string
	StoryID       string
	PartNumber    string
	Title         string
	Content       string
	PublishedDate string
	Views         string
	CreatedAt     string
	UpdatedAt     string
}

// StoryPart is the schema definition for story_parts
var StoryPart = StoryPartTable{
	Table:         "story_parts",
	ID:            "id",
	StoryID:       "story_id",
	PartNumber:    "part_number",
	Title:         "title",
	Content:       "content",
	PublishedDate: "published_date",
	Views:         "views",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

// Columns returns all column names in scan order
func (t StoryPartTable) Columns() []string {
	return []string{
		t.ID, t.StoryID, t.PartNumber, t.Title, t.Content,
		t.PublishedDate, t.Views, t.CreatedAt, t.UpdatedAt,
	}
}
