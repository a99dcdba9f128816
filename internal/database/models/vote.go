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

// VoteModel handles database operations for post and comment votes.
type VoteModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewVote creates a VoteModel with database access.
func NewVote(db *bun.DB, logger *zap.Logger) *VoteModel {
	return &VoteModel{
		db:     db,
		logger: logger.Named("db_vote"),
	}
}

// newVoteRow returns a row of the vote table for the given target type.
func newVoteRow(targetType enum.TargetType, vote types.Vote) (types.VoteRow, error) {
	switch targetType {
	case enum.TargetTypePost:
		return &types.PostVote{Vote: vote}, nil
	case enum.TargetTypeComment:
		return &types.CommentVote{Vote: vote}, nil
	default:
		return nil, types.ErrInvalidTarget
	}
}

// GetVoteWithTx retrieves a user's vote on a target. Returns nil when the user has not voted.
func (r *VoteModel) GetVoteWithTx(
	ctx context.Context, tx bun.IDB, ref types.TargetRef, userID uint64,
) (*types.Vote, error) {
	row, err := newVoteRow(ref.Type, types.Vote{})
	if err != nil {
		return nil, err
	}

	err = tx.NewSelect().Model(row).
		Where("target_id = ?", ref.ID).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vote: %w (type=%s, targetID=%d, userID=%d)",
			err, ref.Type, ref.ID, userID)
	}

	return row.Base(), nil
}

// CreateVoteWithTx inserts a new vote row.
func (r *VoteModel) CreateVoteWithTx(
	ctx context.Context, tx bun.IDB, ref types.TargetRef, userID uint64, voteType enum.VoteType, now time.Time,
) error {
	row, err := newVoteRow(ref.Type, types.Vote{
		TargetID:  ref.ID,
		UserID:    userID,
		VoteType:  voteType,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return err
	}

	if _, err := tx.NewInsert().Model(row).Exec(ctx); err != nil {
		return fmt.Errorf("failed to create vote: %w (type=%s, targetID=%d, userID=%d)",
			err, ref.Type, ref.ID, userID)
	}

	return nil
}

// ChangeVoteTypeWithTx switches an existing vote to the given type.
func (r *VoteModel) ChangeVoteTypeWithTx(
	ctx context.Context, tx bun.IDB, ref types.TargetRef, userID uint64, voteType enum.VoteType, now time.Time,
) error {
	row, err := newVoteRow(ref.Type, types.Vote{})
	if err != nil {
		return err
	}

	_, err = tx.NewUpdate().Model(row).
		Set("vote_type = ?", voteType).
		Set("updated_at = ?", now).
		Where("target_id = ?", ref.ID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to change vote: %w (type=%s, targetID=%d, userID=%d)",
			err, ref.Type, ref.ID, userID)
	}

	return nil
}

// DeleteVoteWithTx removes a user's vote on a target.
func (r *VoteModel) DeleteVoteWithTx(
	ctx context.Context, tx bun.IDB, ref types.TargetRef, userID uint64,
) error {
	row, err := newVoteRow(ref.Type, types.Vote{})
	if err != nil {
		return err
	}

	_, err = tx.NewDelete().Model(row).
		Where("target_id = ?", ref.ID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete vote: %w (type=%s, targetID=%d, userID=%d)",
			err, ref.Type, ref.ID, userID)
	}

	return nil
}

// CountVotesWithTx counts the stored votes of each type on a target.
func (r *VoteModel) CountVotesWithTx(
	ctx context.Context, tx bun.IDB, ref types.TargetRef,
) (upvotes int64, downvotes int64, err error) {
	row, err := newVoteRow(ref.Type, types.Vote{})
	if err != nil {
		return 0, 0, err
	}

	var counts []struct {
		VoteType enum.VoteType `bun:"vote_type"`
		Count    int64         `bun:"count"`
	}

	err = tx.NewSelect().Model(row).
		Column("vote_type").
		ColumnExpr("COUNT(*) AS count").
		Where("target_id = ?", ref.ID).
		Group("vote_type").
		Scan(ctx, &counts)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count votes: %w (type=%s, targetID=%d)", err, ref.Type, ref.ID)
	}

	for _, c := range counts {
		switch c.VoteType {
		case enum.VoteTypeUpvote:
			upvotes = c.Count
		case enum.VoteTypeDownvote:
			downvotes = c.Count
		}
	}

	return upvotes, downvotes, nil
}

// GetVote retrieves a user's vote on a target. Returns nil when the user has not voted.
func (r *VoteModel) GetVote(ctx context.Context, ref types.TargetRef, userID uint64) (*types.Vote, error) {
	return dbretry.Operation(ctx, func(ctx context.Context) (*types.Vote, error) {
		return r.GetVoteWithTx(ctx, r.db, ref, userID)
	})
}
