// internal/domain/transaction.go
package domain

import "time"

// TransactionType defines the type of a money-moving transaction.
type TransactionType string

const (
	TransactionTypeTopup TransactionType = "topup"
	TransactionTypeBonus TransactionType = "bonus"
	TransactionTypeSpend TransactionType = "spend"
)

// TransactionStatus defines the status of a transaction. A transaction row
// only ever exists in the completed state: an aborted unit of work removes
// the row (and its idempotency key) entirely, so there is no persisted
// failed state.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
)

// Transaction is the unit-of-work record for one transfer. Created at most
// once per idempotency key; never updated after commit.
type Transaction struct {
	ID             int64             `db:"id" json:"id"`
	IdempotencyKey string            `db:"idempotency_key" json:"idempotency_key"`
	Type           TransactionType   `db:"type" json:"type"`
	Description    string            `db:"description" json:"description"`
	Metadata       *string           `db:"metadata" json:"metadata,omitempty"`
	Status         TransactionStatus `db:"status" json:"status"`
	CreatedAt      time.Time         `db:"created_at" json:"created_at"`
}
