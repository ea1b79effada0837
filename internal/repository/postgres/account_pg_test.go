// internal/repository/postgres/account_pg_test.go
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

func TestAccountRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO accounts \(type, name\) VALUES \(\$1, \$2\) RETURNING id, created_at`).
		WithArgs(domain.AccountTypeUser, "alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(3, now))

	account := &domain.Account{Type: domain.AccountTypeUser, Name: "alice"}
	err := repo.Create(context.Background(), db, account)
	require.NoError(t, err)
	assert.Equal(t, int64(3), account.ID)
	assert.Equal(t, now, account.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepositoryGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, type, name, created_at FROM accounts WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "type", "name", "created_at"}).
				AddRow(3, "user", "alice", time.Now()))

		account, err := repo.GetByID(context.Background(), db, 3)
		require.NoError(t, err)
		assert.Equal(t, "alice", account.Name)
		assert.False(t, account.IsSystem())
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, type, name, created_at FROM accounts WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "type", "name", "created_at"}))

		_, err := repo.GetByID(context.Background(), db, 99)
		assert.ErrorIs(t, err, util.ErrAccountNotFound)
	})
}

func TestAccountRepositoryGetByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository()

	mock.ExpectQuery(`SELECT id, type, name, created_at FROM accounts WHERE name = \$1`).
		WithArgs(domain.TreasuryAccountName).
		WillReturnRows(sqlmock.NewRows([]string{"id", "type", "name", "created_at"}).
			AddRow(1, "system", domain.TreasuryAccountName, time.Now()))

	account, err := repo.GetByName(context.Background(), db, domain.TreasuryAccountName)
	require.NoError(t, err)
	assert.True(t, account.IsSystem())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssetTypeRepositoryGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssetTypeRepository()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, code, decimals, created_at FROM asset_types WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "decimals", "created_at"}).
				AddRow(1, "Gold Coins", "GLD", 0, time.Now()))

		assetType, err := repo.GetByID(context.Background(), db, 1)
		require.NoError(t, err)
		assert.Equal(t, "GLD", assetType.Code)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, name, code, decimals, created_at FROM asset_types WHERE id = \$1`).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "decimals", "created_at"}))

		_, err := repo.GetByID(context.Background(), db, 42)
		assert.ErrorIs(t, err, util.ErrAssetTypeNotFound)
	})
}
