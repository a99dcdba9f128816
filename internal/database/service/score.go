package service

import (
	"context"
	"time"

	"github.com/team-Roy/prototype-sub000/internal/database/dbretry"
	"github.com/team-Roy/prototype-sub000/internal/database/models"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"github.com/team-Roy/prototype-sub000/internal/setup/config"
	"github.com/team-Roy/prototype-sub000/internal/setup/telemetry"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ScoreService handles the per-lounge score ledger.
type ScoreService struct {
	db          *bun.DB
	model       *models.ScoreModel
	communities *models.CommunityModel
	badges      *BadgeService
	points      config.Points
	metrics     *telemetry.Metrics
	logger      *zap.Logger
}

// NewScore creates a new score service.
func NewScore(
	db *bun.DB,
	model *models.ScoreModel,
	communities *models.CommunityModel,
	badges *BadgeService,
	points config.Points,
	metrics *telemetry.Metrics,
	logger *zap.Logger,
) *ScoreService {
	return &ScoreService{
		db:          db,
		model:       model,
		communities: communities,
		badges:      badges,
		points:      points,
		metrics:     metrics,
		logger:      logger.Named("score_service"),
	}
}

// PointsFor returns the configured default amount of an action.
func (s *ScoreService) PointsFor(action enum.ActionType) int64 {
	switch action {
	case enum.ActionTypePostCreated:
		return s.points.PostCreated
	case enum.ActionTypeCommentCreated:
		return s.points.CommentCreated
	case enum.ActionTypeVoteCast:
		return s.points.VoteCast
	case enum.ActionTypeQuestCompleted:
		return s.points.QuestCompleted
	}
	return 0
}

// resolveAmount picks the custom amount or the action default and validates it.
func (s *ScoreService) resolveAmount(action enum.ActionType, customAmount *int64) (int64, error) {
	if !action.IsAActionType() {
		return 0, types.ErrInvalidAction
	}

	amount := s.PointsFor(action)
	if customAmount != nil {
		amount = *customAmount
	}

	if amount < 0 {
		return 0, types.ErrInvalidAmount
	}

	return amount, nil
}

// AddScore credits a user in a lounge for an action.
// The amount is customAmount when given, otherwise the action default.
func (s *ScoreService) AddScore(
	ctx context.Context, userID, communityID uint64, action enum.ActionType, customAmount *int64,
) (*types.FanScore, error) {
	amount, err := s.resolveAmount(action, customAmount)
	if err != nil {
		return nil, err
	}

	if err := requireCommunity(ctx, s.communities, communityID); err != nil {
		return nil, err
	}

	var score *types.FanScore

	err = dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		score, txErr = s.AddScoreWithTx(ctx, tx, userID, communityID, action, amount)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	return score, nil
}

// AddDefaultScoreWithTx credits the action default using the provided transaction.
func (s *ScoreService) AddDefaultScoreWithTx(
	ctx context.Context, tx bun.IDB, userID, communityID uint64, action enum.ActionType,
) (*types.FanScore, error) {
	amount, err := s.resolveAmount(action, nil)
	if err != nil {
		return nil, err
	}

	return s.AddScoreWithTx(ctx, tx, userID, communityID, action, amount)
}

// AddScoreWithTx credits amount to the total, monthly and action category subtotals,
// then awards any threshold badges the new subtotals reach.
func (s *ScoreService) AddScoreWithTx(
	ctx context.Context, tx bun.IDB, userID, communityID uint64, action enum.ActionType, amount int64,
) (*types.FanScore, error) {
	if amount < 0 {
		return nil, types.ErrInvalidAmount
	}

	now := time.Now().UTC()
	category := action.Category()

	if _, err := s.model.GetOrCreateScoreWithTx(ctx, tx, userID, communityID, now); err != nil {
		return nil, err
	}

	if amount > 0 {
		if err := s.model.IncrementScoreWithTx(ctx, tx, userID, communityID, category, amount, now); err != nil {
			return nil, err
		}
	}

	score, err := s.model.GetScoreWithTx(ctx, tx, userID, communityID)
	if err != nil {
		return nil, err
	}

	if err := s.badges.CheckThresholdsWithTx(ctx, tx, score); err != nil {
		return nil, err
	}

	// TODO: count after commit, a rolled back or replayed transaction still counts here
	s.metrics.ScorePoints(category.String(), amount)

	s.logger.Debug("Added score",
		zap.Uint64("userID", userID),
		zap.Uint64("communityID", communityID),
		zap.String("action", action.String()),
		zap.Int64("amount", amount),
		zap.Int64("total", score.TotalScore))

	return score, nil
}

// GetOrCreateScore returns a user's score in a lounge, creating a zero row on first read.
func (s *ScoreService) GetOrCreateScore(ctx context.Context, userID, communityID uint64) (*types.FanScore, error) {
	var score *types.FanScore

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		var err error
		score, err = s.model.GetOrCreateScoreWithTx(ctx, tx, userID, communityID, time.Now().UTC())
		return err
	})
	if err != nil {
		return nil, err
	}

	return score, nil
}

// GetUserScore returns a user's score in a lounge with their competition rank by total score.
func (s *ScoreService) GetUserScore(ctx context.Context, userID, communityID uint64) (*types.UserScore, error) {
	score, err := s.GetOrCreateScore(ctx, userID, communityID)
	if err != nil {
		return nil, err
	}

	higher, err := s.model.CountHigherScores(ctx, communityID, enum.RankingSortTotal, score.TotalScore)
	if err != nil {
		return nil, err
	}

	return &types.UserScore{
		FanScore:        score,
		CompetitionRank: higher + 1,
	}, nil
}

// GetAllScoresForUser returns every lounge score of a user, highest total first.
func (s *ScoreService) GetAllScoresForUser(ctx context.Context, userID uint64) ([]*types.FanScore, error) {
	return s.model.GetScoresForUser(ctx, userID)
}

// ResetMonthlyScores copies every current rank into the previous rank and zeroes monthly scores.
func (s *ScoreService) ResetMonthlyScores(ctx context.Context) (int64, error) {
	return s.model.ResetMonthlyScores(ctx, time.Now().UTC())
}

// UpdateRankings stores the positional rank by total score of every member of a lounge.
func (s *ScoreService) UpdateRankings(ctx context.Context, communityID uint64) (int64, error) {
	var affected int64

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		var err error
		affected, err = s.model.UpdateRankingsWithTx(ctx, tx, communityID, time.Now().UTC())
		return err
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}
