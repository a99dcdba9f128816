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

// QuestModel handles database operations for quest definitions.
type QuestModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewQuest creates a QuestModel with database access.
func NewQuest(db *bun.DB, logger *zap.Logger) *QuestModel {
	return &QuestModel{
		db:     db,
		logger: logger.Named("db_quest"),
	}
}

// CreateQuest inserts a quest and fills in its generated id.
func (r *QuestModel) CreateQuest(ctx context.Context, quest *types.Quest) error {
	return dbretry.NoResult(ctx, func(ctx context.Context) error {
		if _, err := r.db.NewInsert().Model(quest).Exec(ctx); err != nil {
			return fmt.Errorf("failed to create quest: %w (title=%q)", err, quest.Title)
		}

		r.logger.Debug("Created quest",
			zap.Uint64("questID", quest.ID),
			zap.String("type", quest.QuestType.String()))

		return nil
	})
}

// GetQuest retrieves a quest by id.
func (r *QuestModel) GetQuest(ctx context.Context, id uint64) (*types.Quest, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Quest, error) {
		return r.GetQuestWithTx(ctx, r.db, id)
	})
}

// GetQuestWithTx retrieves a quest by id using the provided transaction.
func (r *QuestModel) GetQuestWithTx(ctx context.Context, tx bun.IDB, id uint64) (*types.Quest, error) {
	var quest types.Quest

	err := tx.NewSelect().Model(&quest).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrQuestNotFound
		}
		return nil, fmt.Errorf("failed to get quest: %w (questID=%d)", err, id)
	}

	return &quest, nil
}

// UpdateQuestWithTx writes every column of the quest.
func (r *QuestModel) UpdateQuestWithTx(ctx context.Context, tx bun.IDB, quest *types.Quest) error {
	_, err := tx.NewUpdate().Model(quest).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update quest: %w (questID=%d)", err, quest.ID)
	}

	return nil
}

// DeleteQuestWithTx removes a quest definition.
func (r *QuestModel) DeleteQuestWithTx(ctx context.Context, tx bun.IDB, id uint64) error {
	_, err := tx.NewDelete().Model((*types.Quest)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete quest: %w (questID=%d)", err, id)
	}

	return nil
}

// GetActiveQuestsForActionWithTx retrieves the active quests triggered by an action.
// Time windows and scopes are checked by the caller.
func (r *QuestModel) GetActiveQuestsForActionWithTx(
	ctx context.Context, tx bun.IDB, action enum.ActionType,
) ([]*types.Quest, error) {
	var quests []*types.Quest

	err := tx.NewSelect().Model(&quests).
		Where("is_active = ?", true).
		Where("action_type = ?", action).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get quests for action: %w (action=%s)", err, action)
	}

	return quests, nil
}

// GetActiveQuests retrieves active quests matching the filter, newest first.
// A community filter matches that lounge's quests and account-wide quests.
func (r *QuestModel) GetActiveQuests(ctx context.Context, filter types.QuestFilter) ([]*types.Quest, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) ([]*types.Quest, error) {
		var quests []*types.Quest

		query := r.db.NewSelect().Model(&quests).
			Where("is_active = ?", true)

		if filter.QuestType != nil {
			query = query.Where("quest_type = ?", *filter.QuestType)
		}

		if filter.CommunityID != nil {
			query = query.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Where("community_id = ?", *filter.CommunityID).
					WhereOr("community_id IS NULL")
			})
		}

		if err := query.Order("id DESC").Scan(ctx); err != nil {
			return nil, fmt.Errorf("failed to get active quests: %w", err)
		}

		return quests, nil
	})
}

// GetQuestsByIDs retrieves the quests with the given ids keyed by id.
func (r *QuestModel) GetQuestsByIDs(ctx context.Context, ids []uint64) (map[uint64]*types.Quest, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (map[uint64]*types.Quest, error) {
		result := make(map[uint64]*types.Quest, len(ids))
		if len(ids) == 0 {
			return result, nil
		}

		var quests []*types.Quest

		err := r.db.NewSelect().Model(&quests).
			Where("id IN (?)", bun.In(ids)).
			Scan(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get quests by ids: %w", err)
		}

		for _, quest := range quests {
			result[quest.ID] = quest
		}

		return result, nil
	})
}
