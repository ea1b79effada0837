// internal/repository/ledger_repo.go
package repository

import (
	"context"

	"wallet-ledger/internal/domain"
)

// LedgerRepository defines the interface for the append-only entry log and
// the balance/history derivations over it.
type LedgerRepository interface {
	// Insert appends one ledger entry. Positive amount credits the wallet,
	// negative debits it. Must run inside a unit of work.
	Insert(ctx context.Context, q DBExecutor, transactionID, walletID, amount int64) error
	// GetByTransactionID returns the entries of one transaction, ordered by ID.
	GetByTransactionID(ctx context.Context, q DBExecutor, transactionID int64) ([]domain.LedgerEntry, error)
	// GetWalletBalance derives a wallet's balance as the sum of its entries.
	// When called while holding the wallet's row lock the read is serialized
	// against concurrent transfers touching the same wallet.
	GetWalletBalance(ctx context.Context, q DBExecutor, walletID int64) (int64, error)
	// GetAccountBalance derives the balance for (accountID, assetTypeID).
	// A missing wallet yields zero.
	GetAccountBalance(ctx context.Context, q DBExecutor, accountID, assetTypeID int64) (int64, error)
	// GetLedger returns one page of the account's entry history for an asset
	// type, newest first (created_at DESC, id DESC).
	GetLedger(ctx context.Context, q DBExecutor, accountID, assetTypeID int64, page, pageSize int) ([]domain.LedgerEntryView, error)
	// CountLedger returns the total entry count for pagination metadata.
	CountLedger(ctx context.Context, q DBExecutor, accountID, assetTypeID int64) (int64, error)
}
