// internal/domain/asset_type.go
package domain

import "time"

// AssetType describes a tracked asset (e.g. Gold Coins). Immutable after
// creation. Decimals is presentation metadata only: amounts everywhere in the
// system are integers in the asset's smallest unit, and the core never
// scales or rounds them.
type AssetType struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Code      string    `db:"code" json:"code"` // Unique short code, e.g. "GLD"
	Decimals  int16     `db:"decimals" json:"decimals"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
