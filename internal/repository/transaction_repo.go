// internal/repository/transaction_repo.go
package repository

import (
	"context"

	"wallet-ledger/internal/domain"
)

// TransactionRepository defines the interface for the idempotency gate and
// transaction lookups.
type TransactionRepository interface {
	// InsertIfNew attempts to insert a transaction row keyed by
	// idempotencyKey. Exactly one concurrent caller with the same key wins:
	// it returns (true, nil) for the winner and (false, nil) for a duplicate.
	// Must run inside a unit of work.
	InsertIfNew(ctx context.Context, q DBExecutor, idempotencyKey string, txType domain.TransactionType, description string) (bool, error)
	// GetByIdempotencyKey retrieves the committed transaction for a key.
	GetByIdempotencyKey(ctx context.Context, q DBExecutor, idempotencyKey string) (*domain.Transaction, error)
}
