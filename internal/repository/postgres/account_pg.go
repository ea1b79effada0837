// internal/repository/postgres/account_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wallet-ledger/internal/domain"
	"wallet-ledger/internal/repository"
	"wallet-ledger/internal/util"
)

// AccountRepository implements repository.AccountRepository for PostgreSQL.
type AccountRepository struct{}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository() repository.AccountRepository {
	return &AccountRepository{}
}

// Create inserts a new account using the provided DBExecutor.
func (r *AccountRepository) Create(ctx context.Context, q repository.DBExecutor, account *domain.Account) error {
	query := `INSERT INTO accounts (type, name) VALUES ($1, $2) RETURNING id, created_at`
	err := q.QueryRowContext(ctx, query, account.Type, account.Name).Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account %q: %w", account.Name, err)
	}
	return nil
}

// GetByID retrieves an account by its ID using the provided DBExecutor.
func (r *AccountRepository) GetByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT id, type, name, created_at FROM accounts WHERE id = $1`
	err := q.GetContext(ctx, &account, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account %d: %w", id, err)
	}
	return &account, nil
}

// GetByName retrieves an account by its unique name using the provided DBExecutor.
func (r *AccountRepository) GetByName(ctx context.Context, q repository.DBExecutor, name string) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT id, type, name, created_at FROM accounts WHERE name = $1`
	err := q.GetContext(ctx, &account, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account %q: %w", name, err)
	}
	return &account, nil
}

// List returns all accounts ordered by ID using the provided DBExecutor.
func (r *AccountRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.Account, error) {
	accounts := []domain.Account{}
	query := `SELECT id, type, name, created_at FROM accounts ORDER BY id`
	if err := q.SelectContext(ctx, &accounts, query); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
