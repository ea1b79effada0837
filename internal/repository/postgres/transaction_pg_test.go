// internal/repository/postgres/transaction_pg_test.go
package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallet-ledger/internal/domain"
	"wallet-ledger/internal/util"
)

func TestTransactionRepositoryInsertIfNew(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository()

	t.Run("admits a fresh key", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO transactions \(idempotency_key, type, description, status\)\s+VALUES \(\$1, \$2, \$3, \$4\)\s+ON CONFLICT \(idempotency_key\) DO NOTHING`).
			WithArgs("key-1", domain.TransactionTypeTopup, "Wallet top-up", domain.TransactionStatusCompleted).
			WillReturnResult(sqlmock.NewResult(1, 1))

		admitted, err := repo.InsertIfNew(context.Background(), db, "key-1", domain.TransactionTypeTopup, "Wallet top-up")
		require.NoError(t, err)
		assert.True(t, admitted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reports a duplicate key", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO transactions`).
			WithArgs("key-1", domain.TransactionTypeTopup, "Wallet top-up", domain.TransactionStatusCompleted).
			WillReturnResult(sqlmock.NewResult(0, 0))

		admitted, err := repo.InsertIfNew(context.Background(), db, "key-1", domain.TransactionTypeTopup, "Wallet top-up")
		require.NoError(t, err)
		assert.False(t, admitted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTransactionRepositoryGetByIdempotencyKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository()

	t.Run("found", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`SELECT id, idempotency_key, type, description, metadata, status, created_at\s+FROM transactions WHERE idempotency_key = \$1`).
			WithArgs("key-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "idempotency_key", "type", "description", "metadata", "status", "created_at"}).
				AddRow(11, "key-1", "topup", "Wallet top-up", nil, "completed", now))

		txn, err := repo.GetByIdempotencyKey(context.Background(), db, "key-1")
		require.NoError(t, err)
		assert.Equal(t, int64(11), txn.ID)
		assert.Equal(t, domain.TransactionTypeTopup, txn.Type)
		assert.Nil(t, txn.Metadata)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, idempotency_key, type, description, metadata, status, created_at`).
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows([]string{"id", "idempotency_key", "type", "description", "metadata", "status", "created_at"}))

		_, err := repo.GetByIdempotencyKey(context.Background(), db, "nope")
		assert.ErrorIs(t, err, util.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
