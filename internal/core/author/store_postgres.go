// Copyright (c) 2026 GolpoHub. All rights reserved.

package author

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/golpohub/golpohub/internal/platform/database/schema"
	"github.com/golpohub/golpohub/internal/platform/dberr"
)

const resource = "Author"

// PostgresRepository implements [Repository] on the relational store.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC`,
		schema.List("", schema.Author.Columns()), schema.Author.Table, schema.Author.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	authors, err := pgx.CollectRows(rows, ScanRow)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return authors, nil
}

func (repository *PostgresRepository) Create(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW(), NOW())
		RETURNING %s
	`,
		schema.Author.Table,
		schema.Author.ID, schema.Author.Username, schema.Author.DisplayName, schema.Author.Bio,
		schema.Author.Avatar, schema.Author.JoinedDate, schema.Author.CreatedAt, schema.Author.UpdatedAt,
		schema.List("", schema.Author.Columns()),
	)

	rows, err := repository.db.Query(context, query, a.ID, a.Username, a.DisplayName, a.Bio, a.Avatar)
	if err != nil {
		return dberr.Wrap(err, resource)
	}

	created, err := pgx.CollectExactlyOneRow(rows, ScanRow)
	if err != nil {
		return dberr.Wrap(err, resource)
	}

	*a = created
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, id string, patch Patch) (*Author, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s),
		    %s = COALESCE($4, %s),
		    %s = COALESCE($5, %s),
		    %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Author.Table,
		schema.Author.Username, schema.Author.Username,
		schema.Author.DisplayName, schema.Author.DisplayName,
		schema.Author.Bio, schema.Author.Bio,
		schema.Author.Avatar, schema.Author.Avatar,
		schema.Author.UpdatedAt,
		schema.Author.ID,
		schema.List("", schema.Author.Columns()),
	)

	rows, err := repository.db.Query(context, query, id, patch.Username, patch.DisplayName, patch.Bio, patch.Avatar)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	updated, err := pgx.CollectExactlyOneRow(rows, ScanRow)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return &updated, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Author.Table, schema.Author.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resource)
	}

	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resource)
	}
	return nil
}

// ScanRow scans one row laid out as [schema.AuthorTable.Columns].
//
// Exported for the story repository, which joins authors into story rows.
func ScanRow(row pgx.CollectableRow) (Author, error) {
	var a Author
	err := row.Scan(
		&a.ID, &a.Username, &a.DisplayName, &a.Bio, &a.Avatar, &a.JoinedDate,
		&a.StoryCount, &a.TotalReads, &a.TotalComments, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}
