// internal/repository/asset_type_repo.go
package repository

import (
	"context"

	"wallet-ledger/internal/domain"
)

// AssetTypeRepository defines the interface for asset type lookups.
type AssetTypeRepository interface {
	// GetByID retrieves an asset type by its ID.
	GetByID(ctx context.Context, q DBExecutor, id int64) (*domain.AssetType, error)
	// List returns all asset types ordered by ID.
	List(ctx context.Context, q DBExecutor) ([]domain.AssetType, error)
}
