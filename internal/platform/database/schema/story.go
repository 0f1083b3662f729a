package schema

// StoryTable represents the 'stories' table
type StoryTable struct {
	Table         string
	ID            string
	Title         string
	Slug          string
	AuthorID      string
	CoverImage    string
	IsFeatured    string
	PublishedDate string
	Views         string
	Comments      string
	CreatedAt     string
	UpdatedAt     string
}

// Story is the schema definition for stories
var Story = StoryTable{
	Table:         "stories",
	ID:            "id",
	Title:         "title",
	Slug:          "slug",
	AuthorID:      "author_id",
	CoverImage:    "cover_image",
	IsFeatured:    "is_featured",
	PublishedDate: "published_date",
	Views:         "views",
	Comments:      "comments",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

// Columns returns all column names in scan order
func (t StoryTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.AuthorID, t.CoverImage, t.IsFeatured,
		t.PublishedDate, t.Views, t.Comments, t.CreatedAt, t.UpdatedAt,
	}
}
