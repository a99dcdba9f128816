package service_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-Roy/prototype-sub000/internal/database/dbtest"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
)

func TestRecordAction(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	engagement := f.Client.Service().Engagement()

	lounge := f.Community(t, "lounge")

	quest, err := f.Client.Service().Quest().CreateQuest(ctx, creator,
		questInput(enum.ActionTypePostCreated, 1, 10, &lounge.ID))
	require.NoError(t, err)

	result, err := engagement.RecordAction(ctx, 3, &lounge.ID, enum.ActionTypePostCreated)
	require.NoError(t, err)
	require.NotNil(t, result.Score)
	require.Len(t, result.Progress, 1)
	assert.Equal(t, quest.ID, result.Progress[0].QuestID)
	assert.True(t, result.Progress[0].IsCompleted)

	// The returned score predates the quest reward credited afterwards
	assert.Equal(t, int64(10), result.Score.PostScore)

	score, err := f.Client.Service().Score().GetOrCreateScore(ctx, 3, lounge.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), score.PostScore)
	assert.Equal(t, int64(10), score.QuestScore)
	assert.Equal(t, int64(20), score.TotalScore)

	// The same action again only adds post points
	result, err = engagement.RecordAction(ctx, 3, &lounge.ID, enum.ActionTypePostCreated)
	require.NoError(t, err)
	assert.Empty(t, result.Progress)
	assert.Equal(t, int64(20), result.Score.PostScore)
	assert.Equal(t, int64(10), result.Score.QuestScore)
}

func TestRecordActionWithoutLounge(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	engagement := f.Client.Service().Engagement()

	_, err := f.Client.Service().Quest().CreateQuest(ctx, creator,
		questInput(enum.ActionTypeCommentCreated, 2, 0, nil))
	require.NoError(t, err)

	result, err := engagement.RecordAction(ctx, 1, nil, enum.ActionTypeCommentCreated)
	require.NoError(t, err)
	assert.Nil(t, result.Score)
	require.Len(t, result.Progress, 1)
	assert.Equal(t, int64(1), result.Progress[0].CurrentCount)

	_, err = engagement.RecordAction(ctx, 1, nil, enum.ActionTypeQuestCompleted)
	require.ErrorIs(t, err, types.ErrInvalidAction)
}

func TestEngagementCastVote(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	engagement := f.Client.Service().Engagement()

	lounge := f.Community(t, "lounge")
	post := f.Post(t, lounge.ID, 1)

	_, err := f.Client.Service().Quest().CreateQuest(ctx, creator,
		questInput(enum.ActionTypeVoteCast, 2, 5, nil))
	require.NoError(t, err)

	cast, err := engagement.CastVote(ctx, post, 2, enum.VoteTypeUpvote)
	require.NoError(t, err)
	assert.Equal(t, enum.VoteOutcomeCreated, cast.Vote.Outcome)
	require.NotNil(t, cast.Score)
	assert.Equal(t, int64(1), cast.Score.VoteScore)
	assert.Equal(t, lounge.ID, cast.Score.CommunityID)
	require.Len(t, cast.Progress, 1)

	// Removing the vote credits nothing
	cast, err = engagement.CastVote(ctx, post, 2, enum.VoteTypeUpvote)
	require.NoError(t, err)
	assert.Equal(t, enum.VoteOutcomeRemoved, cast.Vote.Outcome)
	assert.Nil(t, cast.Score)
	assert.Empty(t, cast.Progress)

	cast, err = engagement.CastVote(ctx, post, 2, enum.VoteTypeDownvote)
	require.NoError(t, err)
	require.NotNil(t, cast.Score)
	require.Len(t, cast.Progress, 1)
	assert.True(t, cast.Progress[0].IsCompleted)

	// Switching type is not a new vote
	cast, err = engagement.CastVote(ctx, post, 2, enum.VoteTypeUpvote)
	require.NoError(t, err)
	assert.Equal(t, enum.VoteOutcomeChanged, cast.Vote.Outcome)
	assert.Nil(t, cast.Score)

	score, err := f.Client.Service().Score().GetOrCreateScore(ctx, 2, lounge.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), score.VoteScore)
	assert.Equal(t, int64(5), score.QuestScore)
}

func TestEngagementCastVoteOnDeletedTarget(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()

	lounge := f.Community(t, "lounge")
	post := f.Post(t, lounge.ID, 1)
	f.SoftDeletePost(t, post.ID)

	_, err := f.Client.Service().Engagement().CastVote(ctx, post, 2, enum.VoteTypeUpvote)
	require.ErrorIs(t, err, types.ErrTargetNotFound)

	all, err := f.Client.Service().Score().GetAllScoresForUser(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRecordActionRollsBackWhenRewardFails(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	quests := f.Client.Service().Quest()

	lounge := f.Community(t, "lounge")

	in := questInput(enum.ActionTypePostCreated, 1, 10, &lounge.ID)
	in.RewardBadge = ptr(enum.BadgeTypeQuestChampion)
	_, err := quests.CreateQuest(ctx, creator, in)
	require.NoError(t, err)

	// The badge grant runs after the action score and the quest score were written
	_, err = f.DB.NewDropTable().Model((*types.FanBadge)(nil)).Exec(ctx)
	require.NoError(t, err)

	_, err = f.Client.Service().Engagement().RecordAction(ctx, 3, &lounge.ID, enum.ActionTypePostCreated)
	require.Error(t, err)

	progress, err := quests.GetUserProgress(ctx, 3, false)
	require.NoError(t, err)
	assert.Empty(t, progress)

	all, err := f.Client.Service().Score().GetAllScoresForUser(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, all)

	completed, err := testutil.GatherAndCount(f.Registry, "lounge_quests_completed_total")
	require.NoError(t, err)
	assert.Zero(t, completed)
}
