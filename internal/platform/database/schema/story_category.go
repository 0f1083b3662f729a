package schema

// StoryCategoryTable represents the 'story_categories' junction table
type StoryCategoryTable struct {
	Table      string
	StoryID    string
	CategoryID string
}

// StoryCategory is the schema definition for story_categories
var StoryCategory = StoryCategoryTable{
	Table:      "story_categories",
	StoryID:    "story_id",
	CategoryID: "category_id",
}
