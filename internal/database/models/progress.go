package models

import (
	"context"
	"fmt"
	"time"

	"github.com/team-Roy/prototype-sub000/internal/database/dbretry"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ProgressModel handles database operations for quest progress.
type ProgressModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewProgress creates a ProgressModel with database access.
func NewProgress(db *bun.DB, logger *zap.Logger) *ProgressModel {
	return &ProgressModel{
		db:     db,
		logger: logger.Named("db_progress"),
	}
}

// GetOrCreateProgressWithTx returns a user's progress on a quest, inserting an empty row when absent.
// The row is locked for the rest of the transaction on PostgreSQL.
func (r *ProgressModel) GetOrCreateProgressWithTx(
	ctx context.Context, tx bun.IDB, userID, questID uint64, now time.Time,
) (*types.QuestProgress, error) {
	progress := &types.QuestProgress{
		UserID:    userID,
		QuestID:   questID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := tx.NewInsert().Model(progress).
		On("CONFLICT (user_id, quest_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert quest progress: %w (userID=%d, questID=%d)", err, userID, questID)
	}

	err = forUpdate(tx.NewSelect().Model(progress).WherePK()).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get quest progress: %w (userID=%d, questID=%d)", err, userID, questID)
	}

	return progress, nil
}

// SaveProgressWithTx writes the count and completion state of a progress row.
func (r *ProgressModel) SaveProgressWithTx(ctx context.Context, tx bun.IDB, progress *types.QuestProgress) error {
	_, err := tx.NewUpdate().Model(progress).
		Column("current_count", "is_completed", "completed_at", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save quest progress: %w (userID=%d, questID=%d)",
			err, progress.UserID, progress.QuestID)
	}

	return nil
}

// GetProgressForQuests retrieves a user's progress rows for the given quests keyed by quest id.
func (r *ProgressModel) GetProgressForQuests(
	ctx context.Context, userID uint64, questIDs []uint64,
) (map[uint64]*types.QuestProgress, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (map[uint64]*types.QuestProgress, error) {
		result := make(map[uint64]*types.QuestProgress, len(questIDs))
		if len(questIDs) == 0 {
			return result, nil
		}

		var rows []*types.QuestProgress

		err := r.db.NewSelect().Model(&rows).
			Where("user_id = ?", userID).
			Where("quest_id IN (?)", bun.In(questIDs)).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get quest progress: %w (userID=%d)", err, userID)
		}

		for _, row := range rows {
			result[row.QuestID] = row
		}

		return result, nil
	})
}

// GetUserProgress retrieves every progress row of a user, most recently touched first.
func (r *ProgressModel) GetUserProgress(
	ctx context.Context, userID uint64, onlyCompleted bool,
) ([]*types.QuestProgress, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.QuestProgress, error) {
		var rows []*types.QuestProgress

		query := r.db.NewSelect().Model(&rows).
			Where("user_id = ?", userID)
		if onlyCompleted {
			query = query.Where("is_completed = ?", true)
		}

		if err := query.Order("updated_at DESC", "quest_id ASC").Scan(ctx); err != nil {
			return nil, fmt.Errorf("failed to get user progress: %w (userID=%d)", err, userID)
		}

		return rows, nil
	})
}

// DeleteByQuestWithTx removes every progress row of a quest.
func (r *ProgressModel) DeleteByQuestWithTx(ctx context.Context, tx bun.IDB, questID uint64) (int64, error) {
	result, err := tx.NewDelete().Model((*types.QuestProgress)(nil)).
		Where("quest_id = ?", questID).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete quest progress: %w (questID=%d)", err, questID)
	}

	affected, _ := result.RowsAffected()

	return affected, nil
}

// DeleteByQuestType removes every progress row belonging to quests of the given type.
func (r *ProgressModel) DeleteByQuestType(ctx context.Context, questType enum.QuestType) (int64, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (int64, error) {
		questIDs := r.db.NewSelect().
			Model((*types.Quest)(nil)).
			Column("id").
			Where("quest_type = ?", questType)

		result, err := r.db.NewDelete().Model((*types.QuestProgress)(nil)).
			Where("quest_id IN (?)", questIDs).
			Exec(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to reset quest progress: %w (type=%s)", err, questType)
		}

		affected, _ := result.RowsAffected()

		r.logger.Info("Reset quest progress",
			zap.String("type", questType.String()),
			zap.Int64("rows", affected))

		return affected, nil
	})
}
