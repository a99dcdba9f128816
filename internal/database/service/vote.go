package service

import (
	"context"
	"fmt"
	"time"

	"github.com/team-Roy/prototype-sub000/internal/database/dbretry"
	"github.com/team-Roy/prototype-sub000/internal/database/models"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"github.com/team-Roy/prototype-sub000/internal/notify"
	"github.com/team-Roy/prototype-sub000/internal/setup/telemetry"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// DefaultMilestoneStep is the upvote interval that notifies the author.
const DefaultMilestoneStep = 10

// VoteHook runs inside the vote transaction after the toggle has been applied.
type VoteHook func(ctx context.Context, tx bun.Tx, result *types.VoteResult) error

// VoteService handles vote toggling and the denormalized counters.
type VoteService struct {
	db            *bun.DB
	targets       *models.TargetModel
	votes         *models.VoteModel
	dispatcher    *notify.Dispatcher
	milestoneStep int64
	metrics       *telemetry.Metrics
	logger        *zap.Logger
}

// NewVote creates a new vote service. A nil dispatcher disables milestone notifications.
func NewVote(
	db *bun.DB,
	targets *models.TargetModel,
	votes *models.VoteModel,
	dispatcher *notify.Dispatcher,
	milestoneStep int64,
	metrics *telemetry.Metrics,
	logger *zap.Logger,
) *VoteService {
	if milestoneStep <= 0 {
		milestoneStep = DefaultMilestoneStep
	}

	return &VoteService{
		db:            db,
		targets:       targets,
		votes:         votes,
		dispatcher:    dispatcher,
		milestoneStep: milestoneStep,
		metrics:       metrics,
		logger:        logger.Named("vote_service"),
	}
}

// CastVote toggles a user's vote on a target.
//
// Without an existing vote one is created. Casting the same type again removes it and
// casting the opposite type switches it. Counters change in the same transaction.
func (s *VoteService) CastVote(
	ctx context.Context, ref types.TargetRef, userID uint64, voteType enum.VoteType,
) (*types.VoteResult, error) {
	return s.CastVoteWithHook(ctx, ref, userID, voteType, nil)
}

// CastVoteWithHook is CastVote with extra work committed atomically with the toggle.
func (s *VoteService) CastVoteWithHook(
	ctx context.Context, ref types.TargetRef, userID uint64, voteType enum.VoteType, hook VoteHook,
) (*types.VoteResult, error) {
	if !ref.Type.IsATargetType() {
		return nil, types.ErrInvalidTarget
	}
	if !voteType.IsAVoteType() {
		return nil, types.ErrInvalidVoteType
	}

	var result *types.VoteResult

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		var err error
		result, err = s.toggleWithTx(ctx, tx, ref, userID, voteType)
		if err != nil {
			return err
		}

		if hook != nil {
			return hook(ctx, tx, result)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.Vote(result.Outcome.String())
	s.notifyMilestone(result, userID)

	s.logger.Debug("Vote cast",
		zap.String("type", ref.Type.String()),
		zap.Uint64("targetID", ref.ID),
		zap.Uint64("userID", userID),
		zap.String("outcome", result.Outcome.String()))

	return result, nil
}

// toggleWithTx applies the three-way toggle and returns the refreshed counters.
func (s *VoteService) toggleWithTx(
	ctx context.Context, tx bun.Tx, ref types.TargetRef, userID uint64, voteType enum.VoteType,
) (*types.VoteResult, error) {
	now := time.Now().UTC()

	// Lock the target so concurrent toggles on it apply one after another
	target, err := s.targets.GetTargetWithTx(ctx, tx, ref, true)
	if err != nil {
		return nil, err
	}

	existing, err := s.votes.GetVoteWithTx(ctx, tx, ref, userID)
	if err != nil {
		return nil, err
	}

	var (
		outcome   enum.VoteOutcome
		userVote  *enum.VoteType
		upDelta   int64
		downDelta int64
	)

	switch {
	case existing == nil:
		if err := s.votes.CreateVoteWithTx(ctx, tx, ref, userID, voteType, now); err != nil {
			return nil, err
		}
		upDelta, downDelta = counterDelta(voteType, 1)
		outcome = enum.VoteOutcomeCreated
		userVote = &voteType

	case existing.VoteType == voteType:
		if err := s.votes.DeleteVoteWithTx(ctx, tx, ref, userID); err != nil {
			return nil, err
		}
		upDelta, downDelta = counterDelta(voteType, -1)
		outcome = enum.VoteOutcomeRemoved

	default:
		if err := s.votes.ChangeVoteTypeWithTx(ctx, tx, ref, userID, voteType, now); err != nil {
			return nil, err
		}
		oldUp, oldDown := counterDelta(existing.VoteType, -1)
		newUp, newDown := counterDelta(voteType, 1)
		upDelta, downDelta = oldUp+newUp, oldDown+newDown
		outcome = enum.VoteOutcomeChanged
		userVote = &voteType
	}

	if err := s.targets.AdjustCountersWithTx(ctx, tx, ref, upDelta, downDelta); err != nil {
		return nil, err
	}

	refreshed, err := s.targets.GetTargetWithTx(ctx, tx, ref, false)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh target counters: %w", err)
	}

	return &types.VoteResult{
		VoteStatus: types.VoteStatus{
			Target:        ref,
			UpvoteCount:   refreshed.UpvoteCount,
			DownvoteCount: refreshed.DownvoteCount,
			UserVote:      userVote,
		},
		Outcome:     outcome,
		CommunityID: target.CommunityID,
		AuthorID:    target.AuthorID,
	}, nil
}

// counterDelta returns the counter changes of adding sign votes of the given type.
func counterDelta(voteType enum.VoteType, sign int64) (upDelta, downDelta int64) {
	if voteType == enum.VoteTypeUpvote {
		return sign, 0
	}
	return 0, sign
}

// IsMilestone reports whether a committed vote result should notify the target's author.
// Only a newly created upvote that lands the count on a positive multiple of step qualifies.
// Flipping a downvote into an upvote never notifies.
func IsMilestone(result *types.VoteResult, voterID uint64, step int64) bool {
	if result.Outcome != enum.VoteOutcomeCreated {
		return false
	}
	if result.UserVote == nil || *result.UserVote != enum.VoteTypeUpvote {
		return false
	}
	if result.AuthorID == voterID {
		return false
	}
	return result.UpvoteCount > 0 && result.UpvoteCount%step == 0
}

// notifyMilestone hands a milestone notification to the dispatcher without waiting for delivery.
func (s *VoteService) notifyMilestone(result *types.VoteResult, voterID uint64) {
	if s.dispatcher == nil || !IsMilestone(result, voterID, s.milestoneStep) {
		return
	}

	s.dispatcher.Dispatch(notify.NewVoteMilestone(result, voterID, time.Now().UTC()))
}

// GetVoteStatus returns a target's counters and the user's current vote on it.
func (s *VoteService) GetVoteStatus(
	ctx context.Context, ref types.TargetRef, userID uint64,
) (*types.VoteStatus, error) {
	if !ref.Type.IsATargetType() {
		return nil, types.ErrInvalidTarget
	}

	target, err := s.targets.GetTarget(ctx, ref)
	if err != nil {
		return nil, err
	}

	vote, err := s.votes.GetVote(ctx, ref, userID)
	if err != nil {
		return nil, err
	}

	status := &types.VoteStatus{
		Target:        ref,
		UpvoteCount:   target.UpvoteCount,
		DownvoteCount: target.DownvoteCount,
	}
	if vote != nil {
		voteType := vote.VoteType
		status.UserVote = &voteType
	}

	return status, nil
}
