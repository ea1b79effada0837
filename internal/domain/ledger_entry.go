// internal/domain/ledger_entry.go
package domain

import "time"

// LedgerEntry is one leg of a double-entry transaction. Amount is a signed
// integer in the asset's smallest unit: positive credits the wallet,
// negative debits it. Entries are append-only and immutable; the two entries
// of a committed transaction always sum to zero.
type LedgerEntry struct {
	ID            int64     `db:"id" json:"id"`
	TransactionID int64     `db:"transaction_id" json:"transaction_id"`
	WalletID      int64     `db:"wallet_id" json:"wallet_id"`
	Amount        int64     `db:"amount" json:"amount"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// LedgerEntryView is the denormalized ledger row returned by the history
// endpoint, enriched with the owning transaction's type and description.
type LedgerEntryView struct {
	ID                     int64           `db:"id" json:"id"`
	TransactionID          int64           `db:"transaction_id" json:"transaction_id"`
	TransactionType        TransactionType `db:"transaction_type" json:"transaction_type"`
	TransactionDescription string          `db:"transaction_description" json:"transaction_description"`
	WalletID               int64           `db:"wallet_id" json:"wallet_id"`
	Amount                 int64           `db:"amount" json:"amount"`
	CreatedAt              time.Time       `db:"created_at" json:"created_at"`
}
