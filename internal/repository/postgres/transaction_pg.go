// internal/repository/postgres/transaction_pg.go
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

// TransactionRepository implements repository.TransactionRepository for PostgreSQL.
type TransactionRepository struct{}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository() repository.TransactionRepository {
	return &TransactionRepository{}
}

// InsertIfNew is the idempotency gate. ON CONFLICT DO NOTHING on the unique
// idempotency_key column makes the insert a compare-and-insert: exactly one
// concurrent caller with the same key gets rowsAffected == 1. A loser racing
// an uncommitted winner blocks on the unique index until the winner commits
// or aborts, then sees 0 (duplicate) or wins the insert itself.
func (r *TransactionRepository) InsertIfNew(ctx context.Context, q repository.DBExecutor, idempotencyKey string, txType domain.TransactionType, description string) (bool, error) {
	query := `INSERT INTO transactions (idempotency_key, type, description, status)
              VALUES ($1, $2, $3, $4)
              ON CONFLICT (idempotency_key) DO NOTHING`
	result, err := q.ExecContext(ctx, query, idempotencyKey, txType, description, domain.TransactionStatusCompleted)
	if err != nil {
		return false, fmt.Errorf("failed to insert transaction for key %q: %w", idempotencyKey, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected for key %q: %w", idempotencyKey, err)
	}
	return rows == 1, nil
}

// GetByIdempotencyKey retrieves the transaction for a key using the provided
// DBExecutor.
func (r *TransactionRepository) GetByIdempotencyKey(ctx context.Context, q repository.DBExecutor, idempotencyKey string) (*domain.Transaction, error) {
	var txn domain.Transaction
	query := `SELECT id, idempotency_key, type, description, metadata, status, created_at
              FROM transactions WHERE idempotency_key = $1`
	err := q.GetContext(ctx, &txn, query, idempotencyKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction for key %q: %w", idempotencyKey, err)
	}
	return &txn, nil
}
