// internal/repository/postgres/asset_type_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"wallet-ledger/internal/domain"
	"wallet-ledger/internal/repository"
	"wallet-ledger/internal/util"
)

// AssetTypeRepository implements repository.AssetTypeRepository for PostgreSQL.
type AssetTypeRepository struct{}

// NewAssetTypeRepository creates a new AssetTypeRepository.
func NewAssetTypeRepository() repository.AssetTypeRepository {
	return &AssetTypeRepository{}
}

// GetByID retrieves an asset type by its ID using the provided DBExecutor.
func (r *AssetTypeRepository) GetByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.AssetType, error) {
	var assetType domain.AssetType
	query := `SELECT id, name, code, decimals, created_at FROM asset_types WHERE id = $1`
	err := q.GetContext(ctx, &assetType, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrAssetTypeNotFound
		}
		return nil, fmt.Errorf("failed to get asset type %d: %w", id, err)
	}
	return &assetType, nil
}

// List returns all asset types ordered by ID using the provided DBExecutor.
func (r *AssetTypeRepository) List(ctx context.Context, q repository.DBExecutor) ([]domain.AssetType, error) {
	assetTypes := []domain.AssetType{}
	query := `SELECT id, name, code, decimals, created_at FROM asset_types ORDER BY id`
	if err := q.SelectContext(ctx, &assetTypes, query); err != nil {
		return nil, fmt.Errorf("failed to list asset types: %w", err)
	}
	return assetTypes, nil
}
