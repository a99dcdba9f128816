package service

import (
	"context"

	"github.com/team-Roy/prototype-sub000/internal/database/dbretry"
	"github.com/team-Roy/prototype-sub000/internal/database/models"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// EngagementService ties user actions to the score ledger and quest progress.
type EngagementService struct {
	db          *bun.DB
	communities *models.CommunityModel
	votes       *VoteService
	scores      *ScoreService
	quests      *QuestService
	logger      *zap.Logger
}

// NewEngagement creates a new engagement service.
func NewEngagement(
	db *bun.DB,
	communities *models.CommunityModel,
	votes *VoteService,
	scores *ScoreService,
	quests *QuestService,
	logger *zap.Logger,
) *EngagementService {
	return &EngagementService{
		db:          db,
		communities: communities,
		votes:       votes,
		scores:      scores,
		quests:      quests,
		logger:      logger.Named("engagement_service"),
	}
}

// RecordAction credits a content action. The lounge score only moves when the action
// happened in a lounge, while quest progress moves in either case.
func (s *EngagementService) RecordAction(
	ctx context.Context, userID uint64, communityID *uint64, action enum.ActionType,
) (*types.ActionResult, error) {
	if !action.Trackable() {
		return nil, types.ErrInvalidAction
	}

	if err := requireOptionalCommunity(ctx, s.communities, communityID); err != nil {
		return nil, err
	}

	var result *types.ActionResult

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		var err error
		result, err = s.recordActionWithTx(ctx, tx, userID, communityID, action)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *EngagementService) recordActionWithTx(
	ctx context.Context, tx bun.IDB, userID uint64, communityID *uint64, action enum.ActionType,
) (*types.ActionResult, error) {
	result := &types.ActionResult{}

	if communityID != nil {
		score, err := s.scores.AddDefaultScoreWithTx(ctx, tx, userID, *communityID, action)
		if err != nil {
			return nil, err
		}
		result.Score = score
	}

	progress, err := s.quests.UpdateProgressWithTx(ctx, tx, userID, action, communityID)
	if err != nil {
		return nil, err
	}
	result.Progress = progress

	return result, nil
}

// CastVote toggles a vote and, when the toggle created a new vote, credits the voter
// with VOTE_CAST in the target's lounge. Everything commits together.
func (s *EngagementService) CastVote(
	ctx context.Context, ref types.TargetRef, userID uint64, voteType enum.VoteType,
) (*types.VoteCastResult, error) {
	cast := &types.VoteCastResult{}

	vote, err := s.votes.CastVoteWithHook(ctx, ref, userID, voteType,
		func(ctx context.Context, tx bun.Tx, result *types.VoteResult) error {
			// A replayed transaction starts from scratch
			cast.Score, cast.Progress = nil, nil

			if result.Outcome != enum.VoteOutcomeCreated {
				return nil
			}

			communityID := result.CommunityID
			action, err := s.recordActionWithTx(ctx, tx, userID, &communityID, enum.ActionTypeVoteCast)
			if err != nil {
				return err
			}

			cast.Score, cast.Progress = action.Score, action.Progress
			return nil
		})
	if err != nil {
		return nil, err
	}

	cast.Vote = vote

	s.logger.Debug("Engagement vote recorded",
		zap.Uint64("userID", userID),
		zap.String("outcome", vote.Outcome.String()),
		zap.Bool("scored", cast.Score != nil))

	return cast, nil
}
