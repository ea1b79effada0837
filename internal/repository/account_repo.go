// internal/repository/account_repo.go
package repository

import (
	"context"

	"wallet-ledger/internal/domain"
)

// AccountRepository defines the interface for account directory operations.
type AccountRepository interface {
	// Create inserts a new account and populates its ID and CreatedAt.
	Create(ctx context.Context, q DBExecutor, account *domain.Account) error
	// GetByID retrieves an account by its ID.
	GetByID(ctx context.Context, q DBExecutor, id int64) (*domain.Account, error)
	// GetByName retrieves an account by its unique name. Used to resolve the
	// Treasury and Revenue system accounts.
	GetByName(ctx context.Context, q DBExecutor, name string) (*domain.Account, error)
	// List returns all accounts ordered by ID.
	List(ctx context.Context, q DBExecutor) ([]domain.Account, error)
}
