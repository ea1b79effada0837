// internal/repository/postgres/ledger_pg_test.go
package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepositoryInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository()

	mock.ExpectExec(`INSERT INTO ledger_entries \(transaction_id, wallet_id, amount\) VALUES \(\$1, \$2, \$3\)`).
		WithArgs(int64(11), int64(7), int64(-500)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Insert(context.Background(), db, 11, 7, -500)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepositoryGetByTransactionID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository()
	now := time.Now()

	mock.ExpectQuery(`SELECT id, transaction_id, wallet_id, amount, created_at\s+FROM ledger_entries WHERE transaction_id = \$1 ORDER BY id`).
		WithArgs(int64(11)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "transaction_id", "wallet_id", "amount", "created_at"}).
			AddRow(1, 11, 1, -500, now).
			AddRow(2, 11, 7, 500, now))

	entries, err := repo.GetByTransactionID(context.Background(), db, 11)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(-500), entries[0].Amount)
	assert.Equal(t, int64(500), entries[1].Amount)
	assert.Zero(t, entries[0].Amount+entries[1].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepositoryGetAccountBalance(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository()

	t.Run("sums entries across the account wallet", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(le.amount\), 0\)\s+FROM ledger_entries le\s+JOIN wallets w ON w.id = le.wallet_id\s+WHERE w.account_id = \$1 AND w.asset_type_id = \$2`).
			WithArgs(int64(3), int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(350))

		balance, err := repo.GetAccountBalance(context.Background(), db, 3, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(350), balance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("account without a wallet sums to zero", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COALESCE\(SUM\(le.amount\), 0\)`).
			WithArgs(int64(99), int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

		balance, err := repo.GetAccountBalance(context.Background(), db, 99, 1)
		require.NoError(t, err)
		assert.Zero(t, balance)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerRepositoryGetLedger(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository()
	now := time.Now()

	mock.ExpectQuery(`ORDER BY le.created_at DESC, le.id DESC\s+LIMIT \$3 OFFSET \$4`).
		WithArgs(int64(3), int64(1), 20, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "transaction_id", "transaction_type", "transaction_description", "wallet_id", "amount", "created_at"}).
			AddRow(6, 13, "spend", "Credit spend", 7, -200, now).
			AddRow(4, 12, "bonus", "Bonus credit", 7, 100, now.Add(-time.Minute)))

	entries, err := repo.GetLedger(context.Background(), db, 3, 1, 2, 20)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(-200), entries[0].Amount)
	assert.Equal(t, "Credit spend", entries[0].TransactionDescription)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerRepositoryCountLedger(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository()

	mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM ledger_entries le\s+JOIN wallets w ON w.id = le.wallet_id\s+WHERE w.account_id = \$1 AND w.asset_type_id = \$2`).
		WithArgs(int64(3), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountLedger(context.Background(), db, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
