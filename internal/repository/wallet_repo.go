// internal/repository/wallet_repo.go
package repository

import (
	"context"

	"wallet-ledger/internal/domain"
)

// WalletRepository defines the interface for wallet registry operations.
type WalletRepository interface {
	// GetOrCreate atomically resolves the wallet for (accountID, assetTypeID),
	// creating it if it does not exist yet. Concurrent first-time callers for
	// the same pair converge on a single wallet. Must run inside a unit of
	// work.
	GetOrCreate(ctx context.Context, q DBExecutor, accountID, assetTypeID int64) (*domain.Wallet, error)
	// LockWallets acquires exclusive row locks on the given wallets in
	// ascending ID order, blocking until any conflicting holder releases
	// them. The consistent ordering is the deadlock-avoidance mechanism and
	// must not be changed. Must run inside a unit of work, and only after
	// every wallet in ids already exists.
	LockWallets(ctx context.Context, q DBExecutor, ids []int64) error
}
