package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/team-Roy/prototype-sub000/internal/database/dbretry"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// TargetModel handles the engine's access to posts and comments.
type TargetModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewTarget creates a TargetModel with database access.
func NewTarget(db *bun.DB, logger *zap.Logger) *TargetModel {
	return &TargetModel{
		db:     db,
		logger: logger.Named("db_target"),
	}
}

// newTargetRow returns an empty row of the table holding the given target type.
func newTargetRow(targetType enum.TargetType) (types.TargetRow, error) {
	switch targetType {
	case enum.TargetTypePost:
		return &types.Post{}, nil
	case enum.TargetTypeComment:
		return &types.Comment{}, nil
	default:
		return nil, types.ErrInvalidTarget
	}
}

// GetTarget retrieves a live target without locking it.
func (r *TargetModel) GetTarget(ctx context.Context, ref types.TargetRef) (*types.Target, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Target, error) {
		return r.GetTargetWithTx(ctx, r.db, ref, false)
	})
}

// GetTargetWithTx retrieves a live target using the provided transaction.
// With lock set the row stays locked until the transaction ends.
func (r *TargetModel) GetTargetWithTx(
	ctx context.Context, tx bun.IDB, ref types.TargetRef, lock bool,
) (*types.Target, error) {
	row, err := newTargetRow(ref.Type)
	if err != nil {
		return nil, err
	}

	query := tx.NewSelect().Model(row).Where("id = ?", ref.ID)
	if lock {
		query = forUpdate(query)
	}

	if err := query.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrTargetNotFound
		}
		return nil, fmt.Errorf("failed to get target: %w (type=%s, id=%d)", err, ref.Type, ref.ID)
	}

	target := row.Base()
	if target.IsDeleted {
		return nil, types.ErrTargetNotFound
	}

	return target, nil
}

// AdjustCountersWithTx applies deltas to the vote counters of a target in place.
func (r *TargetModel) AdjustCountersWithTx(
	ctx context.Context, tx bun.IDB, ref types.TargetRef, upDelta, downDelta int64,
) error {
	if upDelta == 0 && downDelta == 0 {
		return nil
	}

	row, err := newTargetRow(ref.Type)
	if err != nil {
		return err
	}

	_, err = tx.NewUpdate().Model(row).
		Set("upvote_count = upvote_count + ?", upDelta).
		Set("downvote_count = downvote_count + ?", downDelta).
		Where("id = ?", ref.ID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to adjust vote counters: %w (type=%s, id=%d)", err, ref.Type, ref.ID)
	}

	r.logger.Debug("Adjusted vote counters",
		zap.String("type", ref.Type.String()),
		zap.Uint64("id", ref.ID),
		zap.Int64("upDelta", upDelta),
		zap.Int64("downDelta", downDelta))

	return nil
}
