package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-Roy/prototype-sub000/internal/database/dbtest"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"github.com/team-Roy/prototype-sub000/internal/setup/config"
)

func TestAddScoreAdditivity(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	scores := f.Client.Service().Score()

	lounge := f.Community(t, "lounge")

	calls := []struct {
		action enum.ActionType
		amount int64
	}{
		{enum.ActionTypePostCreated, 10},
		{enum.ActionTypeCommentCreated, 7},
		{enum.ActionTypeVoteCast, 1},
		{enum.ActionTypePostCreated, 3},
		{enum.ActionTypeQuestCompleted, 25},
		{enum.ActionTypeCommentCreated, 0},
	}

	var score *types.FanScore
	for _, c := range calls {
		var err error
		score, err = scores.AddScore(ctx, 1, lounge.ID, c.action, amount(c.amount))
		require.NoError(t, err)
	}

	assert.Equal(t, int64(46), score.TotalScore)
	assert.Equal(t, int64(46), score.MonthlyScore)
	assert.Equal(t, int64(13), score.PostScore)
	assert.Equal(t, int64(7), score.CommentScore)
	assert.Equal(t, int64(1), score.VoteScore)
	assert.Equal(t, int64(25), score.QuestScore)
	assert.Equal(t, score.TotalScore,
		score.PostScore+score.CommentScore+score.VoteScore+score.QuestScore)
}

func TestAddScoreDefaults(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	scores := f.Client.Service().Score()

	lounge := f.Community(t, "lounge")

	for _, action := range []enum.ActionType{
		enum.ActionTypePostCreated,
		enum.ActionTypeCommentCreated,
		enum.ActionTypeVoteCast,
		enum.ActionTypeQuestCompleted,
	} {
		_, err := scores.AddScore(ctx, 1, lounge.ID, action, nil)
		require.NoError(t, err)
	}

	score, err := scores.GetOrCreateScore(ctx, 1, lounge.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), score.PostScore)
	assert.Equal(t, int64(5), score.CommentScore)
	assert.Equal(t, int64(1), score.VoteScore)
	assert.Equal(t, int64(0), score.QuestScore)
	assert.Equal(t, int64(16), score.TotalScore)
}

func TestAddScoreConfiguredPoints(t *testing.T) {
	t.Parallel()

	engine := config.DefaultEngine()
	engine.Points.PostCreated = 42

	f := dbtest.New(t, dbtest.WithEngine(engine))
	lounge := f.Community(t, "lounge")

	score, err := f.Client.Service().Score().AddScore(t.Context(), 1, lounge.ID, enum.ActionTypePostCreated, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), score.PostScore)
}

func TestAddScoreValidation(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	scores := f.Client.Service().Score()

	lounge := f.Community(t, "lounge")

	_, err := scores.AddScore(ctx, 1, lounge.ID, enum.ActionTypePostCreated, amount(-1))
	require.ErrorIs(t, err, types.ErrInvalidAmount)
	require.ErrorIs(t, err, types.ErrValidation)

	_, err = scores.AddScore(ctx, 1, lounge.ID, enum.ActionType(42), nil)
	require.ErrorIs(t, err, types.ErrInvalidAction)

	// Nothing was written by the rejected calls
	all, err := scores.GetAllScoresForUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetOrCreateScore(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	scores := f.Client.Service().Score()

	lounge := f.Community(t, "lounge")

	score, err := scores.GetOrCreateScore(ctx, 7, lounge.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), score.UserID)
	assert.Equal(t, lounge.ID, score.CommunityID)
	assert.Zero(t, score.TotalScore)
	assert.Zero(t, score.Rank)
	assert.Nil(t, score.PreviousRank)

	again, err := scores.GetOrCreateScore(ctx, 7, lounge.ID)
	require.NoError(t, err)
	assert.Equal(t, score.CreatedAt.Unix(), again.CreatedAt.Unix())

	all, err := scores.GetAllScoresForUser(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetUserScoreCompetitionRank(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	scores := f.Client.Service().Score()

	lounge := f.Community(t, "lounge")

	for user, points := range map[uint64]int64{1: 100, 2: 80, 3: 80, 4: 50} {
		_, err := scores.AddScore(ctx, user, lounge.ID, enum.ActionTypeVoteCast, amount(points))
		require.NoError(t, err)
	}

	tests := []struct {
		user uint64
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 4},
		{5, 5},
	}

	for _, tt := range tests {
		score, err := scores.GetUserScore(ctx, tt.user, lounge.ID)
		require.NoError(t, err)
		assert.Equal(t, tt.want, score.CompetitionRank, "user %d", tt.user)
	}
}

func TestGetAllScoresForUserOrdering(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	scores := f.Client.Service().Score()

	first := f.Community(t, "first")
	second := f.Community(t, "second")
	third := f.Community(t, "third")

	_, err := scores.AddScore(ctx, 1, first.ID, enum.ActionTypePostCreated, amount(5))
	require.NoError(t, err)
	_, err = scores.AddScore(ctx, 1, second.ID, enum.ActionTypePostCreated, amount(50))
	require.NoError(t, err)
	_, err = scores.AddScore(ctx, 1, third.ID, enum.ActionTypePostCreated, amount(20))
	require.NoError(t, err)
	_, err = scores.AddScore(ctx, 2, third.ID, enum.ActionTypePostCreated, amount(99))
	require.NoError(t, err)

	all, err := scores.GetAllScoresForUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, second.ID, all[0].CommunityID)
	assert.Equal(t, third.ID, all[1].CommunityID)
	assert.Equal(t, first.ID, all[2].CommunityID)
}

func TestMonthlyCycle(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	scores := f.Client.Service().Score()
	badges := f.Client.Service().Badge()

	lounge := f.Community(t, "lounge")
	other := f.Community(t, "other")

	// Users 2 and 3 tie on 80 so the positional order falls back to user id
	for user, points := range map[uint64]int64{1: 100, 2: 80, 3: 80, 4: 50} {
		_, err := scores.AddScore(ctx, user, lounge.ID, enum.ActionTypeVoteCast, amount(points))
		require.NoError(t, err)
	}
	_, err := scores.AddScore(ctx, 9, other.ID, enum.ActionTypeVoteCast, amount(1))
	require.NoError(t, err)

	ranked, err := scores.UpdateRankings(ctx, lounge.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), ranked)

	for user, want := range map[uint64]int{1: 1, 2: 2, 3: 3, 4: 4} {
		score, err := scores.GetOrCreateScore(ctx, user, lounge.ID)
		require.NoError(t, err)
		assert.Equal(t, want, score.Rank, "user %d", user)
	}

	// The other lounge was never ranked
	untouched, err := scores.GetOrCreateScore(ctx, 9, other.ID)
	require.NoError(t, err)
	assert.Zero(t, untouched.Rank)

	badge, err := badges.AwardTopFanBadge(ctx, lounge.ID)
	require.NoError(t, err)
	require.NotNil(t, badge)
	assert.Equal(t, uint64(1), badge.UserID)
	assert.Equal(t, enum.BadgeTypeTopFan, badge.BadgeType)
	assert.Equal(t, lounge.ID, badge.CommunityID)
	require.NotNil(t, badge.ExpiresAt)
	assert.WithinDuration(t, badge.AwardedAt.AddDate(0, 1, 0), *badge.ExpiresAt, 5*time.Second)

	reset, err := scores.ResetMonthlyScores(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), reset)

	for user, want := range map[uint64]int{1: 1, 2: 2, 3: 3, 4: 4} {
		score, err := scores.GetOrCreateScore(ctx, user, lounge.ID)
		require.NoError(t, err)
		assert.Zero(t, score.MonthlyScore)
		assert.NotZero(t, score.TotalScore)
		require.NotNil(t, score.PreviousRank)
		assert.Equal(t, want, *score.PreviousRank, "user %d", user)
	}

	untouched, err = scores.GetOrCreateScore(ctx, 9, other.ID)
	require.NoError(t, err)
	assert.Zero(t, untouched.MonthlyScore)
	assert.Nil(t, untouched.PreviousRank)

	// Nobody has monthly points after the reset
	badge, err = badges.AwardTopFanBadge(ctx, lounge.ID)
	require.NoError(t, err)
	assert.Nil(t, badge)
}
