package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/team-Roy/prototype-sub000/internal/database/dbretry"
	"github.com/team-Roy/prototype-sub000/internal/database/models"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"github.com/team-Roy/prototype-sub000/internal/setup/telemetry"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// QuestService handles quest definitions and per-user progress.
type QuestService struct {
	db          *bun.DB
	quests      *models.QuestModel
	progress    *models.ProgressModel
	communities *models.CommunityModel
	scores      *ScoreService
	badges      *BadgeService
	validate    *validator.Validate
	metrics     *telemetry.Metrics
	logger      *zap.Logger
}

// NewQuest creates a new quest service.
func NewQuest(
	db *bun.DB,
	quests *models.QuestModel,
	progress *models.ProgressModel,
	communities *models.CommunityModel,
	scores *ScoreService,
	badges *BadgeService,
	metrics *telemetry.Metrics,
	logger *zap.Logger,
) *QuestService {
	return &QuestService{
		db:          db,
		quests:      quests,
		progress:    progress,
		communities: communities,
		scores:      scores,
		badges:      badges,
		validate:    newValidator(),
		metrics:     metrics,
		logger:      logger.Named("quest_service"),
	}
}

// CreateQuest validates and stores a new quest owned by the actor.
// The quest starts now and is active unless the input says otherwise.
func (s *QuestService) CreateQuest(
	ctx context.Context, actor types.Actor, input *types.QuestInput,
) (*types.Quest, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	if err := requireOptionalCommunity(ctx, s.communities, input.CommunityID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	startsAt := now
	if input.StartsAt != nil {
		startsAt = input.StartsAt.UTC()
	}

	endsAt := utcPtr(input.EndsAt)
	if err := checkWindow(startsAt, endsAt); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	quest := &types.Quest{
		Title:       input.Title,
		Description: input.Description,
		QuestType:   *input.QuestType,
		ActionType:  *input.ActionType,
		TargetCount: input.TargetCount,
		RewardScore: input.RewardScore,
		RewardBadge: input.RewardBadge,
		CommunityID: input.CommunityID,
		CreatorID:   actor.UserID,
		StartsAt:    startsAt,
		EndsAt:      endsAt,
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.quests.CreateQuest(ctx, quest); err != nil {
		return nil, err
	}

	s.logger.Info("Created quest",
		zap.Uint64("questID", quest.ID),
		zap.Uint64("creatorID", actor.UserID),
		zap.String("type", quest.QuestType.String()),
		zap.String("action", quest.ActionType.String()))

	return quest, nil
}

// UpdateQuest applies a patch to a quest the actor created, or to any quest for admins.
func (s *QuestService) UpdateQuest(
	ctx context.Context, actor types.Actor, id uint64, patch *types.QuestPatch,
) (*types.Quest, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}

	if err := requireOptionalCommunity(ctx, s.communities, patch.CommunityID); err != nil {
		return nil, err
	}

	var quest *types.Quest

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		var err error
		quest, err = s.quests.GetQuestWithTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if !actor.CanManage(quest) {
			return types.ErrNotQuestOwner
		}

		applyPatch(quest, patch)
		quest.UpdatedAt = time.Now().UTC()

		if err := checkWindow(quest.StartsAt, quest.EndsAt); err != nil {
			return err
		}

		return s.quests.UpdateQuestWithTx(ctx, tx, quest)
	})
	if err != nil {
		return nil, err
	}

	return quest, nil
}

// DeleteQuest removes a quest the actor created, or any quest for admins, with all its progress.
func (s *QuestService) DeleteQuest(ctx context.Context, actor types.Actor, id uint64) error {
	return dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		quest, err := s.quests.GetQuestWithTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if !actor.CanManage(quest) {
			return types.ErrNotQuestOwner
		}

		removed, err := s.progress.DeleteByQuestWithTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := s.quests.DeleteQuestWithTx(ctx, tx, id); err != nil {
			return err
		}

		s.logger.Info("Deleted quest",
			zap.Uint64("questID", id),
			zap.Uint64("actorID", actor.UserID),
			zap.Int64("progressRows", removed))

		return nil
	})
}

// UpdateProgress advances every open quest that counts the action for the user.
// Returns the progress rows that moved.
func (s *QuestService) UpdateProgress(
	ctx context.Context, userID uint64, action enum.ActionType, communityID *uint64,
) ([]*types.QuestProgress, error) {
	if !action.IsAActionType() {
		return nil, types.ErrInvalidAction
	}

	if err := requireOptionalCommunity(ctx, s.communities, communityID); err != nil {
		return nil, err
	}

	var touched []*types.QuestProgress

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		var err error
		touched, err = s.UpdateProgressWithTx(ctx, tx, userID, action, communityID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return touched, nil
}

// UpdateProgressWithTx advances quest progress using the provided transaction.
//
// A quest counts the action when it is active, its window covers now and its scope matches.
// Lounge quests need the action's lounge while account-wide quests match every action.
// Completed rows never change again and the reward is granted in the same transaction.
func (s *QuestService) UpdateProgressWithTx(
	ctx context.Context, tx bun.IDB, userID uint64, action enum.ActionType, communityID *uint64,
) ([]*types.QuestProgress, error) {
	quests, err := s.quests.GetActiveQuestsForActionWithTx(ctx, tx, action)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	touched := make([]*types.QuestProgress, 0, len(quests))

	for _, quest := range quests {
		if !quest.IsOpenAt(now) || !quest.AppliesTo(communityID) {
			continue
		}

		progress, err := s.progress.GetOrCreateProgressWithTx(ctx, tx, userID, quest.ID, now)
		if err != nil {
			return nil, err
		}

		if progress.IsCompleted {
			continue
		}

		progress.CurrentCount++
		progress.UpdatedAt = now

		completed := progress.CurrentCount >= quest.TargetCount
		if completed {
			progress.IsCompleted = true
			progress.CompletedAt = &now
		}

		if err := s.progress.SaveProgressWithTx(ctx, tx, progress); err != nil {
			return nil, err
		}

		if completed {
			if err := s.grantRewardWithTx(ctx, tx, userID, quest, communityID); err != nil {
				return nil, err
			}
		}

		touched = append(touched, progress)
	}

	return touched, nil
}

// grantRewardWithTx credits a completed quest's score and badge.
// Score goes to the action's lounge, falling back to the quest's lounge.
func (s *QuestService) grantRewardWithTx(
	ctx context.Context, tx bun.IDB, userID uint64, quest *types.Quest, communityID *uint64,
) error {
	if quest.RewardScore > 0 {
		target := communityID
		if target == nil {
			target = quest.CommunityID
		}

		if target != nil {
			_, err := s.scores.AddScoreWithTx(ctx, tx, userID, *target, enum.ActionTypeQuestCompleted, quest.RewardScore)
			if err != nil {
				return fmt.Errorf("failed to grant quest score: %w", err)
			}
		} else {
			s.logger.Debug("Skipped quest score without a lounge",
				zap.Uint64("questID", quest.ID),
				zap.Uint64("userID", userID))
		}
	}

	if quest.RewardBadge != nil {
		scope := types.ScopeID(quest.CommunityID)
		if _, err := s.badges.AwardBadgeWithTx(ctx, tx, userID, scope, *quest.RewardBadge, nil); err != nil {
			return fmt.Errorf("failed to grant quest badge: %w", err)
		}
	}

	s.metrics.QuestCompleted(quest.QuestType.String())

	s.logger.Info("Quest completed",
		zap.Uint64("questID", quest.ID),
		zap.Uint64("userID", userID))

	return nil
}

// ListQuests returns the open quests matching the filter with the user's progress on each.
// Quests the user has completed are left out unless the filter includes them.
func (s *QuestService) ListQuests(
	ctx context.Context, filter types.QuestFilter, userID *uint64,
) ([]*types.QuestView, error) {
	if filter.QuestType != nil && !filter.QuestType.IsAQuestType() {
		return nil, fmt.Errorf("%w: invalid quest type", types.ErrValidation)
	}

	quests, err := s.quests.GetActiveQuests(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	open := make([]*types.Quest, 0, len(quests))
	ids := make([]uint64, 0, len(quests))
	for _, quest := range quests {
		if quest.IsOpenAt(now) {
			open = append(open, quest)
			ids = append(ids, quest.ID)
		}
	}

	progress := map[uint64]*types.QuestProgress{}
	if userID != nil {
		progress, err = s.progress.GetProgressForQuests(ctx, *userID, ids)
		if err != nil {
			return nil, err
		}
	}

	views := make([]*types.QuestView, 0, len(open))
	for _, quest := range open {
		view := types.NewQuestView(quest, progress[quest.ID])
		if view.IsCompleted && !filter.IncludeCompleted {
			continue
		}
		views = append(views, view)
	}

	return views, nil
}

// GetQuest returns one quest with the user's progress on it.
func (s *QuestService) GetQuest(ctx context.Context, id uint64, userID *uint64) (*types.QuestView, error) {
	quest, err := s.quests.GetQuest(ctx, id)
	if err != nil {
		return nil, err
	}

	var progress *types.QuestProgress
	if userID != nil {
		rows, err := s.progress.GetProgressForQuests(ctx, *userID, []uint64{id})
		if err != nil {
			return nil, err
		}
		progress = rows[id]
	}

	return types.NewQuestView(quest, progress), nil
}

// GetUserProgress returns the user's progress rows joined with their quests.
func (s *QuestService) GetUserProgress(
	ctx context.Context, userID uint64, onlyCompleted bool,
) ([]*types.QuestView, error) {
	rows, err := s.progress.GetUserProgress(ctx, userID, onlyCompleted)
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.QuestID)
	}

	quests, err := s.quests.GetQuestsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]*types.QuestView, 0, len(rows))
	for _, row := range rows {
		quest, ok := quests[row.QuestID]
		if !ok {
			continue
		}
		views = append(views, types.NewQuestView(quest, row))
	}

	return views, nil
}

// ResetDailyQuests clears all progress on daily quests.
func (s *QuestService) ResetDailyQuests(ctx context.Context) (int64, error) {
	return s.progress.DeleteByQuestType(ctx, enum.QuestTypeDaily)
}

// ResetWeeklyQuests clears all progress on weekly quests.
func (s *QuestService) ResetWeeklyQuests(ctx context.Context) (int64, error) {
	return s.progress.DeleteByQuestType(ctx, enum.QuestTypeWeekly)
}

// applyPatch copies the set fields of a patch onto a quest.
func applyPatch(quest *types.Quest, patch *types.QuestPatch) {
	if patch.Title != nil {
		quest.Title = *patch.Title
	}
	if patch.Description != nil {
		quest.Description = *patch.Description
	}
	if patch.QuestType != nil {
		quest.QuestType = *patch.QuestType
	}
	if patch.ActionType != nil {
		quest.ActionType = *patch.ActionType
	}
	if patch.TargetCount != nil {
		quest.TargetCount = *patch.TargetCount
	}
	if patch.RewardScore != nil {
		quest.RewardScore = *patch.RewardScore
	}
	switch {
	case patch.RewardBadge != nil:
		badge := *patch.RewardBadge
		quest.RewardBadge = &badge
	case patch.ClearRewardBadge:
		quest.RewardBadge = nil
	}
	switch {
	case patch.CommunityID != nil:
		communityID := *patch.CommunityID
		quest.CommunityID = &communityID
	case patch.ClearCommunity:
		quest.CommunityID = nil
	}
	if patch.StartsAt != nil {
		quest.StartsAt = patch.StartsAt.UTC()
	}
	switch {
	case patch.EndsAt != nil:
		quest.EndsAt = utcPtr(patch.EndsAt)
	case patch.ClearEndsAt:
		quest.EndsAt = nil
	}
	if patch.IsActive != nil {
		quest.IsActive = *patch.IsActive
	}
}

// checkWindow rejects windows that end before they start.
func checkWindow(startsAt time.Time, endsAt *time.Time) error {
	if endsAt != nil && !endsAt.After(startsAt) {
		return fmt.Errorf("%w: endsAt must be after startsAt", types.ErrValidation)
	}
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
