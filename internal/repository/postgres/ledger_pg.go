// internal/repository/postgres/ledger_pg.go
package postgres

import (
	"context"
	"fmt"

	"wallet-ledger/internal/domain"
	"wallet-ledger/internal/repository"
)

// LedgerRepository implements repository.LedgerRepository for PostgreSQL.
type LedgerRepository struct{}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository() repository.LedgerRepository {
	return &LedgerRepository{}
}

// Insert appends one ledger entry using the provided DBExecutor.
func (r *LedgerRepository) Insert(ctx context.Context, q repository.DBExecutor, transactionID, walletID, amount int64) error {
	query := `INSERT INTO ledger_entries (transaction_id, wallet_id, amount) VALUES ($1, $2, $3)`
	if _, err := q.ExecContext(ctx, query, transactionID, walletID, amount); err != nil {
		return fmt.Errorf("failed to insert ledger entry for transaction %d, wallet %d: %w", transactionID, walletID, err)
	}
	return nil
}

// GetByTransactionID returns the entries of one transaction, ordered by ID.
func (r *LedgerRepository) GetByTransactionID(ctx context.Context, q repository.DBExecutor, transactionID int64) ([]domain.LedgerEntry, error) {
	entries := []domain.LedgerEntry{}
	query := `SELECT id, transaction_id, wallet_id, amount, created_at
              FROM ledger_entries WHERE transaction_id = $1 ORDER BY id`
	if err := q.SelectContext(ctx, &entries, query, transactionID); err != nil {
		return nil, fmt.Errorf("failed to get ledger entries for transaction %d: %w", transactionID, err)
	}
	return entries, nil
}

// GetWalletBalance derives a wallet's balance as the sum of its entries.
func (r *LedgerRepository) GetWalletBalance(ctx context.Context, q repository.DBExecutor, walletID int64) (int64, error) {
	var balance int64
	query := `SELECT COALESCE(SUM(amount), 0) FROM ledger_entries WHERE wallet_id = $1`
	if err := q.GetContext(ctx, &balance, query, walletID); err != nil {
		return 0, fmt.Errorf("failed to get balance for wallet %d: %w", walletID, err)
	}
	return balance, nil
}

// GetAccountBalance derives the balance for (accountID, assetTypeID). An
// account that never touched the asset type has no wallet and sums to zero.
func (r *LedgerRepository) GetAccountBalance(ctx context.Context, q repository.DBExecutor, accountID, assetTypeID int64) (int64, error) {
	var balance int64
	query := `SELECT COALESCE(SUM(le.amount), 0)
              FROM ledger_entries le
              JOIN wallets w ON w.id = le.wallet_id
              WHERE w.account_id = $1 AND w.asset_type_id = $2`
	if err := q.GetContext(ctx, &balance, query, accountID, assetTypeID); err != nil {
		return 0, fmt.Errorf("failed to get balance for account %d, asset type %d: %w", accountID, assetTypeID, err)
	}
	return balance, nil
}

// GetLedger returns one page of the account's entry history, newest first.
// Ties on created_at break by id descending so the two entries of one
// transaction stay adjacent and the order is deterministic.
func (r *LedgerRepository) GetLedger(ctx context.Context, q repository.DBExecutor, accountID, assetTypeID int64, page, pageSize int) ([]domain.LedgerEntryView, error) {
	offset := (page - 1) * pageSize
	entries := []domain.LedgerEntryView{}
	query := `SELECT le.id, le.transaction_id, t.type AS transaction_type,
                     t.description AS transaction_description,
                     le.wallet_id, le.amount, le.created_at
              FROM ledger_entries le
              JOIN wallets w ON w.id = le.wallet_id
              JOIN transactions t ON t.id = le.transaction_id
              WHERE w.account_id = $1 AND w.asset_type_id = $2
              ORDER BY le.created_at DESC, le.id DESC
              LIMIT $3 OFFSET $4`
	if err := q.SelectContext(ctx, &entries, query, accountID, assetTypeID, pageSize, offset); err != nil {
		return nil, fmt.Errorf("failed to get ledger for account %d, asset type %d: %w", accountID, assetTypeID, err)
	}
	return entries, nil
}

// CountLedger returns the total entry count for pagination metadata.
func (r *LedgerRepository) CountLedger(ctx context.Context, q repository.DBExecutor, accountID, assetTypeID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*)
              FROM ledger_entries le
              JOIN wallets w ON w.id = le.wallet_id
              WHERE w.account_id = $1 AND w.asset_type_id = $2`
	if err := q.GetContext(ctx, &count, query, accountID, assetTypeID); err != nil {
		return 0, fmt.Errorf("failed to count ledger for account %d, asset type %d: %w", accountID, assetTypeID, err)
	}
	return count, nil
}
