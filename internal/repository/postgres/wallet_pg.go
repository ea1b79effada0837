// internal/repository/postgres/wallet_pg.go
package postgres

import (
	"context"
	"fmt"
	"sort"

	"github.com/lib/pq"

	"wallet-ledger/internal/domain"
	"wallet-ledger/internal/repository"
)

// WalletRepository implements repository.WalletRepository for PostgreSQL.
type WalletRepository struct{}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository() repository.WalletRepository {
	return &WalletRepository{}
}

// GetOrCreate atomically resolves the wallet for (accountID, assetTypeID).
// INSERT ON CONFLICT DO NOTHING makes concurrent first-time callers safe:
// the unique (account_id, asset_type_id) constraint guarantees they all
// converge on the same row.
func (r *WalletRepository) GetOrCreate(ctx context.Context, q repository.DBExecutor, accountID, assetTypeID int64) (*domain.Wallet, error) {
	insert := `INSERT INTO wallets (account_id, asset_type_id) VALUES ($1, $2)
               ON CONFLICT (account_id, asset_type_id) DO NOTHING`
	if _, err := q.ExecContext(ctx, insert, accountID, assetTypeID); err != nil {
		return nil, fmt.Errorf("failed to create wallet for account %d, asset type %d: %w", accountID, assetTypeID, err)
	}

	var wallet domain.Wallet
	query := `SELECT id, account_id, asset_type_id, created_at FROM wallets
              WHERE account_id = $1 AND asset_type_id = $2`
	if err := q.GetContext(ctx, &wallet, query, accountID, assetTypeID); err != nil {
		return nil, fmt.Errorf("failed to get wallet for account %d, asset type %d: %w", accountID, assetTypeID, err)
	}
	return &wallet, nil
}

// LockWallets acquires FOR UPDATE row locks on the given wallets, strictly
// in ascending ID order. Every transfer locks this way, so two transfers
// sharing wallets always contend on the lowest shared ID first and the
// wait-for graph can never cycle.
func (r *WalletRepository) LockWallets(ctx context.Context, q repository.DBExecutor, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	// Sort ascending and dedupe: the input is a set, but the count check
	// below relies on unique IDs.
	sorted := make([]int64, 0, len(ids))
	for _, id := range ids {
		sorted = append(sorted, id)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	unique := sorted[:1]
	for _, id := range sorted[1:] {
		if id != unique[len(unique)-1] {
			unique = append(unique, id)
		}
	}
	sorted = unique

	locked := []int64{}
	query := `SELECT id FROM wallets WHERE id = ANY($1) ORDER BY id ASC FOR UPDATE`
	if err := q.SelectContext(ctx, &locked, query, pq.Array(sorted)); err != nil {
		return fmt.Errorf("failed to lock wallets %v: %w", sorted, err)
	}
	if len(locked) != len(sorted) {
		return fmt.Errorf("failed to lock wallets %v: %d of %d rows found", sorted, len(locked), len(sorted))
	}
	return nil
}
