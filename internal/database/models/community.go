package models

import (
	"context"
	"fmt"

	"github.com/team-Roy/prototype-sub000/internal/database/dbretry"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// CommunityModel handles the engine's read access to lounges.
type CommunityModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewCommunity creates a CommunityModel with database access.
func NewCommunity(db *bun.DB, logger *zap.Logger) *CommunityModel {
	return &CommunityModel{
		db:     db,
		logger: logger.Named("db_community"),
	}
}

// Exists reports whether a lounge with the given id exists.
func (r *CommunityModel) Exists(ctx context.Context, id uint64) (bool, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (bool, error) {
		exists, err := r.db.NewSelect().Model((*types.Community)(nil)).
			Where("id = ?", id).
			Exists(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to check community: %w (communityID=%d)", err, id)
		}

		return exists, nil
	})
}

// GetIDs retrieves the ids of every lounge in ascending order.
func (r *CommunityModel) GetIDs(ctx context.Context) ([]uint64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]uint64, error) {
		var ids []uint64

		err := r.db.NewSelect().Model((*types.Community)(nil)).
			Column("id").
			Order("id ASC").
			Scan(ctx, &ids)
		if err != nil {
			return nil, fmt.Errorf("failed to get community ids: %w", err)
		}

		return ids, nil
	})
}
