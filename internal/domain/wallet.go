// internal/domain/wallet.go
package domain

import "time"

// Wallet is the (account, asset type) unit whose balance is tracked.
// Wallets are created lazily on first reference and are unique per
// (AccountID, AssetTypeID) pair. A wallet row stores no balance: the balance
// is always derived from the ledger entries referencing it.
type Wallet struct {
	ID          int64     `db:"id" json:"id"`
	AccountID   int64     `db:"account_id" json:"account_id"`
	AssetTypeID int64     `db:"asset_type_id" json:"asset_type_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
