// internal/domain/account.go
package domain

import "time"

// AccountType distinguishes human users from system entities.
type AccountType string

const (
	AccountTypeUser   AccountType = "user"
	AccountTypeSystem AccountType = "system"
)

// Well-known system account names. They are created by the seed data and
// their absence is a fatal configuration error.
const (
	TreasuryAccountName = "Treasury"
	RevenueAccountName  = "Revenue"
)

// Account represents an owner of wallets. Immutable after creation.
type Account struct {
	ID        int64       `db:"id" json:"id"`
	Type      AccountType `db:"type" json:"type"`
	Name      string      `db:"name" json:"name"` // Unique
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}

// IsSystem reports whether the account is exempt from the non-negative
// balance rule.
func (a *Account) IsSystem() bool {
	return a.Type == AccountTypeSystem
}
