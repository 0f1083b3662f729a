// Copyright (c) 2026 GolpoHub. All rights reserved.

package story

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/golpohub/golpohub/internal/core/author"
	"github.com/golpohub/golpohub/internal/platform/database/schema"
	"github.com/golpohub/golpohub/internal/platform/dberr"
)

const (
	resource     = "Story"
	partResource = "Story part"
)

// PostgresRepository implements [Repository] on the relational store.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
List retrieves every story with its relations in one round-trip.

Description: The author is joined as plain columns; categories and parts are
folded into JSON arrays by correlated json_agg sub-queries so the result has
one row per story. Parts are aggregated in part_number order.

Parameters:
  - context: context.Context

Returns:
  - []Story: Stories ordered by created_at descending
  - error: Classified storage errors
*/
func (repository *PostgresRepository) List(context context.Context) ([]Story, error) {
	s, a, c, sc, p := schema.Story, schema.Author, schema.Category, schema.StoryCategory, schema.StoryPart

	query := fmt.Sprintf(`
		SELECT
			%s,
			%s,
			COALESCE((
				SELECT json_agg(json_build_object('id', c.%s, 'name', c.%s, 'created_at', c.%s) ORDER BY c.%s)
				FROM %s c
				JOIN %s sc ON sc.%s = c.%s
				WHERE sc.%s = s.%s
			), '[]') AS categories,
			COALESCE((
				SELECT json_agg(json_build_object(
					'id', p.%s, 'story_id', p.%s, 'part_number', p.%s, 'title', p.%s,
					'content', p.%s, 'published_date', p.%s, 'views', p.%s,
					'created_at', p.%s, 'updated_at', p.%s
				) ORDER BY p.%s)
				FROM %s p
				WHERE p.%s = s.%s
			), '[]') AS parts
		FROM %s s
		JOIN %s a ON a.%s = s.%s
		ORDER BY s.%s DESC
	`,
		schema.List("s", s.Columns()),
		schema.List("a", a.Columns()),
		c.ID, c.Name, c.CreatedAt, c.Name,
		c.Table,
		sc.Table, sc.CategoryID, c.ID,
		sc.StoryID, s.ID,
		p.ID, p.StoryID, p.PartNumber, p.Title,
		p.Content, p.PublishedDate, p.Views,
		p.CreatedAt, p.UpdatedAt,
		p.PartNumber,
		p.Table,
		p.StoryID, s.ID,
		s.Table,
		a.Table, a.ID, s.AuthorID,
		s.CreatedAt,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	stories, err := pgx.CollectRows(rows, scanHydrated)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return stories, nil
}

func (repository *PostgresRepository) Create(context context.Context, story *Story) error {
	s := schema.Story
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW(), NOW())
		RETURNING %s
	`,
		s.Table,
		s.ID, s.Title, s.Slug, s.AuthorID, s.CoverImage, s.IsFeatured, s.PublishedDate, s.CreatedAt, s.UpdatedAt,
		schema.List("", s.Columns()),
	)

	rows, err := repository.pool.Query(context, query,
		story.ID, story.Title, story.Slug, story.AuthorID, story.CoverImage, story.IsFeatured,
	)
	if err != nil {
		return dberr.Wrap(err, resource)
	}

	created, err := pgx.CollectExactlyOneRow(rows, scanStory)
	if err != nil {
		return dberr.Wrap(err, resource)
	}

	*story = created
	return nil
}

// LinkCategories inserts junction rows for storyID in a single transaction.
func (repository *PostgresRepository) LinkCategories(context context.Context, storyID string, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, resource)
	}
	defer func() { _ = transaction.Rollback(context) }()

	if err := insertLinks(context, transaction, storyID, categoryIDs); err != nil {
		return err
	}

	return dberr.Wrap(transaction.Commit(context), resource)
}

// CreateParts inserts all parts in one batched transaction.
func (repository *PostgresRepository) CreateParts(context context.Context, parts []Part) error {
	if len(parts) == 0 {
		return nil
	}

	p := schema.StoryPart
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW(), NOW())
	`,
		p.Table, p.ID, p.StoryID, p.PartNumber, p.Title, p.Content, p.PublishedDate, p.CreatedAt, p.UpdatedAt,
	)

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, partResource)
	}
	defer func() { _ = transaction.Rollback(context) }()

	batch := &pgx.Batch{}
	for _, part := range parts {
		batch.Queue(query, part.ID, part.StoryID, part.PartNumber, part.Title, part.Content)
	}

	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, partResource)
	}

	return dberr.Wrap(transaction.Commit(context), partResource)
}

/*
Update applies a partial patch to the story row and, when requested, replaces
its category links, all inside one transaction.

Returns:
  - *Story: The updated story row (relations are not hydrated)
  - error: NOT_FOUND if id is unknown, CONFLICT on duplicate slug
*/
func (repository *PostgresRepository) Update(context context.Context, id string, patch Patch) (*Story, error) {
	s := schema.Story
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s),
		    %s = COALESCE($4, %s),
		    %s = COALESCE($5, %s),
		    %s = COALESCE($6, %s),
		    %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		s.Table,
		s.Title, s.Title,
		s.Slug, s.Slug,
		s.AuthorID, s.AuthorID,
		s.CoverImage, s.CoverImage,
		s.IsFeatured, s.IsFeatured,
		s.UpdatedAt,
		s.ID,
		schema.List("", s.Columns()),
	)

	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	defer func() { _ = transaction.Rollback(context) }()

	rows, err := transaction.Query(context, query, id, patch.Title, patch.Slug, patch.AuthorID, patch.CoverImage, patch.IsFeatured)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	updated, err := pgx.CollectExactlyOneRow(rows, scanStory)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	if patch.CategoryIDs != nil {
		clearQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.StoryCategory.Table, schema.StoryCategory.StoryID)
		if _, err := transaction.Exec(context, clearQuery, id); err != nil {
			return nil, dberr.Wrap(err, resource)
		}
		if err := insertLinks(context, transaction, id, *patch.CategoryIDs); err != nil {
			return nil, err
		}
	}

	if err := transaction.Commit(context); err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return &updated, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	return repository.deleteByID(context, schema.Story.Table, schema.Story.ID, id, resource)
}

func (repository *PostgresRepository) CreatePart(context context.Context, part *Part) error {
	p := schema.StoryPart
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW(), NOW())
		RETURNING %s
	`,
		p.Table, p.ID, p.StoryID, p.PartNumber, p.Title, p.Content, p.PublishedDate, p.CreatedAt, p.UpdatedAt,
		schema.List("", p.Columns()),
	)

	rows, err := repository.pool.Query(context, query, part.ID, part.StoryID, part.PartNumber, part.Title, part.Content)
	if err != nil {
		return dberr.Wrap(err, partResource)
	}

	created, err := pgx.CollectExactlyOneRow(rows, scanPart)
	if err != nil {
		return dberr.Wrap(err, partResource)
	}

	*part = created
	return nil
}

func (repository *PostgresRepository) UpdatePart(context context.Context, id string, patch PartPatch) (*Part, error) {
	p := schema.StoryPart
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s),
		    %s = COALESCE($4, %s),
		    %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		p.Table,
		p.PartNumber, p.PartNumber,
		p.Title, p.Title,
		p.Content, p.Content,
		p.UpdatedAt,
		p.ID,
		schema.List("", p.Columns()),
	)

	rows, err := repository.pool.Query(context, query, id, patch.PartNumber, patch.Title, patch.Content)
	if err != nil {
		return nil, dberr.Wrap(err, partResource)
	}

	updated, err := pgx.CollectExactlyOneRow(rows, scanPart)
	if err != nil {
		return nil, dberr.Wrap(err, partResource)
	}
	return &updated, nil
}

func (repository *PostgresRepository) DeletePart(context context.Context, id string) error {
	return repository.deleteByID(context, schema.StoryPart.Table, schema.StoryPart.ID, id, partResource)
}

// IncrementStoryViews calls the server-side counter procedure for a story.
func (repository *PostgresRepository) IncrementStoryViews(context context.Context, storyID string) error {
	_, err := repository.pool.Exec(context, fmt.Sprintf(`SELECT %s($1)`, schema.ProcIncrementStoryViews), storyID)
	return dberr.Wrap(err, resource)
}

// IncrementPartViews calls the server-side counter procedure for a part.
func (repository *PostgresRepository) IncrementPartViews(context context.Context, partID string) error {
	_, err := repository.pool.Exec(context, fmt.Sprintf(`SELECT %s($1)`, schema.ProcIncrementPartViews), partID)
	return dberr.Wrap(err, partResource)
}

func (repository *PostgresRepository) deleteByID(context context.Context, table, idColumn, id, name string) error {
	cmd, err := repository.pool.Exec(context, fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, table, idColumn), id)
	if err != nil {
		return dberr.Wrap(err, name)
	}

	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, name)
	}
	return nil
}

// insertLinks queues one junction insert per category on transaction.
func insertLinks(context context.Context, transaction pgx.Tx, storyID string, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	sc := schema.StoryCategory
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING`, sc.Table, sc.StoryID, sc.CategoryID)

	batch := &pgx.Batch{}
	for _, categoryID := range categoryIDs {
		batch.Queue(query, storyID, categoryID)
	}

	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "Story category")
	}
	return nil
}

// # Row Scanning

func scanStory(row pgx.CollectableRow) (Story, error) {
	var s Story
	err := row.Scan(storyTargets(&s)...)
	return s, err
}

func scanPart(row pgx.CollectableRow) (Part, error) {
	var p Part
	err := row.Scan(
		&p.ID, &p.StoryID, &p.PartNumber, &p.Title, &p.Content,
		&p.PublishedDate, &p.Views, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// scanHydrated scans story columns, author columns, then the two JSON arrays.
func scanHydrated(row pgx.CollectableRow) (Story, error) {
	var (
		s              Story
		a              author.Author
		categoriesJSON []byte
		partsJSON      []byte
	)

	targets := storyTargets(&s)
	targets = append(targets,
		&a.ID, &a.Username, &a.DisplayName, &a.Bio, &a.Avatar, &a.JoinedDate,
		&a.StoryCount, &a.TotalReads, &a.TotalComments, &a.CreatedAt, &a.UpdatedAt,
		&categoriesJSON, &partsJSON,
	)

	if err := row.Scan(targets...); err != nil {
		return Story{}, err
	}

	if err := json.Unmarshal(categoriesJSON, &s.Categories); err != nil {
		return Story{}, fmt.Errorf("postgres: failed to unmarshal categories: %w", err)
	}
	if err := json.Unmarshal(partsJSON, &s.Parts); err != nil {
		return Story{}, fmt.Errorf("postgres: failed to unmarshal parts: %w", err)
	}

	SortParts(s.Parts)
	s.Author = &a
	return s, nil
}

func storyTargets(s *Story) []any {
	return []any{
		&s.ID, &s.Title, &s.Slug, &s.AuthorID, &s.CoverImage, &s.IsFeatured,
		&s.PublishedDate, &s.Views, &s.Comments, &s.CreatedAt, &s.UpdatedAt,
	}
}
