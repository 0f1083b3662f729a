// Copyright (c) 2026 GolpoHub. All rights reserved.

package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/golpohub/golpohub/internal/platform/database/schema"
	"github.com/golpohub/golpohub/internal/platform/dberr"
)

const resource = "Category"

// PostgresRepository implements [Repository] on the relational store.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a [PostgresRepository] over pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		schema.List("", schema.Category.Columns()), schema.Category.Table, schema.Category.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	categories, err := pgx.CollectRows(rows, scanCategory)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return categories, nil
}

func (repository *PostgresRepository) Create(context context.Context, category *Category) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, NOW())
		RETURNING %s
	`,
		schema.Category.Table, schema.Category.ID, schema.Category.Name, schema.Category.CreatedAt,
		schema.Category.CreatedAt,
	)

	err := repository.db.QueryRow(context, query, category.ID, category.Name).Scan(&category.CreatedAt)
	return dberr.Wrap(err, resource)
}

func (repository *PostgresRepository) Update(context context.Context, id string, patch Patch) (*Category, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s)
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Category.Table,
		schema.Category.Name, schema.Category.Name,
		schema.Category.ID,
		schema.List("", schema.Category.Columns()),
	)

	rows, err := repository.db.Query(context, query, id, patch.Name)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	category, err := pgx.CollectExactlyOneRow(rows, scanCategory)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return &category, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Category.Table, schema.Category.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resource)
	}

	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resource)
	}
	return nil
}

func scanCategory(row pgx.CollectableRow) (Category, error) {
	var c Category
	err := row.Scan(&c.ID, &c.Name, &c.CreatedAt)
	return c, err
}
