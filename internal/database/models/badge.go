package models

import (
	"context"
	"fmt"

	"github.com/team-Roy/prototype-sub000/internal/database/dbretry"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// BadgeModel handles database operations for fan badges.
type BadgeModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewBadge creates a BadgeModel with database access.
func NewBadge(db *bun.DB, logger *zap.Logger) *BadgeModel {
	return &BadgeModel{
		db:     db,
		logger: logger.Named("db_badge"),
	}
}

// UpsertBadgeWithTx inserts a badge or, when the user already holds it in that scope,
// replaces only its expiry.
func (r *BadgeModel) UpsertBadgeWithTx(ctx context.Context, tx bun.IDB, badge *types.FanBadge) error {
	_, err := tx.NewInsert().Model(badge).
		On("CONFLICT (user_id, community_id, badge_type) DO UPDATE").
		Set("expires_at = EXCLUDED.expires_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert badge: %w (userID=%d, communityID=%d, type=%s)",
			err, badge.UserID, badge.CommunityID, badge.BadgeType)
	}

	return nil
}

// GetBadgeWithTx retrieves a held badge including expired ones. Returns nil when absent.
func (r *BadgeModel) GetBadgeWithTx(
	ctx context.Context, tx bun.IDB, key *types.FanBadge,
) (*types.FanBadge, error) {
	var badges []*types.FanBadge

	err := tx.NewSelect().Model(&badges).
		Where("user_id = ?", key.UserID).
		Where("community_id = ?", key.CommunityID).
		Where("badge_type = ?", key.BadgeType).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get badge: %w (userID=%d, communityID=%d, type=%s)",
			err, key.UserID, key.CommunityID, key.BadgeType)
	}

	if len(badges) == 0 {
		return nil, nil
	}

	return badges[0], nil
}

// GetBadges retrieves every badge row of a user, newest award first.
// With a community set only that lounge's badges and global badges are returned.
func (r *BadgeModel) GetBadges(ctx context.Context, userID uint64, communityID *uint64) ([]*types.FanBadge, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.FanBadge, error) {
		var badges []*types.FanBadge

		query := r.db.NewSelect().Model(&badges).
			Where("user_id = ?", userID)
		if communityID != nil {
			query = query.Where("community_id IN (?)", bun.In([]uint64{*communityID, types.GlobalScope}))
		}

		err := query.
			Order("awarded_at DESC", "community_id ASC", "badge_type ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get badges: %w (userID=%d)", err, userID)
		}

		return badges, nil
	})
}
