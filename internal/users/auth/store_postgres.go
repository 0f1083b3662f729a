// Copyright (c) 2026 GolpoHub. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/golpohub/golpohub/internal/platform/database/schema"
	"github.com/golpohub/golpohub/internal/platform/dberr"
)

const resource = "Account"

// PostgresAccountRepository implements [AccountRepository] on admin_users.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

/*
FindByEmail retrieves an account by its normalized email address.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Account: The stored account
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresAccountRepository) FindByEmail(context context.Context, email string) (*Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.List("", schema.AdminUser.Columns()), schema.AdminUser.Table, schema.AdminUser.Email,
	)

	account := &Account{}
	err := repository.pool.QueryRow(context, query, NormalizeEmail(email)).Scan(
		&account.ID,
		&account.Email,
		&account.PasswordHash,
		&account.IsAdmin,
		&account.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	return account, nil
}

func (repository *PostgresAccountRepository) Create(context context.Context, account *Account) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING %s
	`,
		schema.AdminUser.Table,
		schema.AdminUser.ID, schema.AdminUser.Email, schema.AdminUser.PasswordHash, schema.AdminUser.IsAdmin, schema.AdminUser.CreatedAt,
		schema.AdminUser.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		account.ID, NormalizeEmail(account.Email), account.PasswordHash, account.IsAdmin,
	).Scan(&account.CreatedAt)
	return dberr.Wrap(err, resource)
}

func (repository *PostgresAccountRepository) Promote(context context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1`,
		schema.AdminUser.Table, schema.AdminUser.IsAdmin, schema.AdminUser.ID,
	)

	cmd, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resource)
	}
	if cmd.RowsAffected() == 0 {
		return dberr.Wrap(pgx.ErrNoRows, resource)
	}
	return nil
}
