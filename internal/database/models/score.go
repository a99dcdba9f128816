package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/team-Roy/prototype-sub000/internal/database/dbretry"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ScoreModel handles database operations for fan scores.
type ScoreModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewScore creates a ScoreModel with database access.
func NewScore(db *bun.DB, logger *zap.Logger) *ScoreModel {
	return &ScoreModel{
		db:     db,
		logger: logger.Named("db_score"),
	}
}

// GetOrCreateScoreWithTx returns the score row of a user in a lounge, inserting a zero row when absent.
// The row is locked for the rest of the transaction on PostgreSQL.
func (r *ScoreModel) GetOrCreateScoreWithTx(
	ctx context.Context, tx bun.IDB, userID, communityID uint64, now time.Time,
) (*types.FanScore, error) {
	score := &types.FanScore{
		UserID:      userID,
		CommunityID: communityID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := tx.NewInsert().Model(score).
		On("CONFLICT (user_id, community_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert fan score: %w (userID=%d, communityID=%d)",
			err, userID, communityID)
	}

	err = forUpdate(tx.NewSelect().Model(score).WherePK()).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get fan score: %w (userID=%d, communityID=%d)",
			err, userID, communityID)
	}

	return score, nil
}

// IncrementScoreWithTx adds amount to the total, monthly and category subtotals in place.
func (r *ScoreModel) IncrementScoreWithTx(
	ctx context.Context, tx bun.IDB, userID, communityID uint64,
	category enum.ScoreCategory, amount int64, now time.Time,
) error {
	column := bun.Ident(category.Column())

	_, err := tx.NewUpdate().Model((*types.FanScore)(nil)).
		Set("total_score = total_score + ?", amount).
		Set("monthly_score = monthly_score + ?", amount).
		Set("? = ? + ?", column, column, amount).
		Set("updated_at = ?", now).
		Where("user_id = ?", userID).
		Where("community_id = ?", communityID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to increment fan score: %w (userID=%d, communityID=%d, category=%s)",
			err, userID, communityID, category)
	}

	return nil
}

// GetScoreWithTx retrieves the score row of a user in a lounge. Returns nil when absent.
func (r *ScoreModel) GetScoreWithTx(
	ctx context.Context, tx bun.IDB, userID, communityID uint64,
) (*types.FanScore, error) {
	var score types.FanScore

	err := tx.NewSelect().Model(&score).
		Where("user_id = ?", userID).
		Where("community_id = ?", communityID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fan score: %w (userID=%d, communityID=%d)",
			err, userID, communityID)
	}

	return &score, nil
}

// GetScore retrieves the score row of a user in a lounge. Returns nil when absent.
func (r *ScoreModel) GetScore(ctx context.Context, userID, communityID uint64) (*types.FanScore, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.FanScore, error) {
		return r.GetScoreWithTx(ctx, r.db, userID, communityID)
	})
}

// GetScoresForUser retrieves every score row of a user, highest total first.
func (r *ScoreModel) GetScoresForUser(ctx context.Context, userID uint64) ([]*types.FanScore, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.FanScore, error) {
		var scores []*types.FanScore

		err := r.db.NewSelect().Model(&scores).
			Where("user_id = ?", userID).
			Order("total_score DESC", "community_id ASC").
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get fan scores: %w (userID=%d)", err, userID)
		}

		return scores, nil
	})
}

// CountHigherScores counts the rows of a lounge whose sort field is strictly greater than score.
func (r *ScoreModel) CountHigherScores(
	ctx context.Context, communityID uint64, sort enum.RankingSort, score int64,
) (int, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int, error) {
		count, err := r.db.NewSelect().Model((*types.FanScore)(nil)).
			Where("community_id = ?", communityID).
			Where("? > ?", bun.Ident(sort.Column()), score).
			Count(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to count higher scores: %w (communityID=%d)", err, communityID)
		}

		return count, nil
	})
}

// GetRankingPage retrieves one page of a lounge leaderboard and the total row count.
// Rows are ordered by the sort field descending with ties broken by user id.
func (r *ScoreModel) GetRankingPage(
	ctx context.Context, communityID uint64, sort enum.RankingSort, offset, limit int,
) ([]*types.FanScore, int, error) {
	type page struct {
		scores []*types.FanScore
		total  int
	}

	result, err := dbretry.Operation(ctx, func(ctx context.Context) (page, error) {
		var scores []*types.FanScore

		total, err := r.db.NewSelect().Model(&scores).
			Where("community_id = ?", communityID).
			OrderExpr("? DESC", bun.Ident(sort.Column())).
			Order("user_id ASC").
			Offset(offset).
			Limit(limit).
			ScanAndCount(ctx)
		if err != nil {
			return page{}, fmt.Errorf("failed to get ranking page: %w (communityID=%d)", err, communityID)
		}

		return page{scores: scores, total: total}, nil
	})
	if err != nil {
		return nil, 0, err
	}

	return result.scores, result.total, nil
}

// GetTopMonthlyScoreWithTx returns the row with the highest monthly score in a lounge.
// Ties go to the lowest user id. Returns nil when the lounge has no scores.
func (r *ScoreModel) GetTopMonthlyScoreWithTx(
	ctx context.Context, tx bun.IDB, communityID uint64,
) (*types.FanScore, error) {
	var score types.FanScore

	err := tx.NewSelect().Model(&score).
		Where("community_id = ?", communityID).
		Order("monthly_score DESC", "user_id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get top monthly score: %w (communityID=%d)", err, communityID)
	}

	return &score, nil
}

// UpdateRankingsWithTx stores the 1-based position of every row of a lounge ordered by
// total score descending then user id ascending. Ties are not collapsed.
func (r *ScoreModel) UpdateRankingsWithTx(
	ctx context.Context, tx bun.IDB, communityID uint64, now time.Time,
) (int64, error) {
	result, err := tx.NewRaw(`
		UPDATE fan_scores
		SET current_rank = ranked.pos, updated_at = ?
		FROM (
			SELECT user_id, ROW_NUMBER() OVER (ORDER BY total_score DESC, user_id ASC) AS pos
			FROM fan_scores
			WHERE community_id = ?
		) AS ranked
		WHERE fan_scores.community_id = ? AND fan_scores.user_id = ranked.user_id
	`, now, communityID, communityID).Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to update rankings: %w (communityID=%d)", err, communityID)
	}

	affected, _ := result.RowsAffected()

	r.logger.Debug("Updated rankings",
		zap.Uint64("communityID", communityID),
		zap.Int64("rows", affected))

	return affected, nil
}

// ResetMonthlyScores snapshots every current rank into previous_rank and zeroes monthly scores.
// Rows that were never ranked keep a null previous rank.
func (r *ScoreModel) ResetMonthlyScores(ctx context.Context, now time.Time) (int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int64, error) {
		result, err := r.db.NewUpdate().Model((*types.FanScore)(nil)).
			Set("previous_rank = NULLIF(current_rank, 0)").
			Set("monthly_score = 0").
			Set("updated_at = ?", now).
			Where("1 = 1").
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to reset monthly scores: %w", err)
		}

		affected, _ := result.RowsAffected()

		r.logger.Info("Reset monthly scores", zap.Int64("rows", affected))

		return affected, nil
	})
}
