package types_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
)

func TestProgressPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current int64
		target  int64
		want    int
	}{
		{0, 3, 0},
		{1, 3, 33},
		{2, 3, 67},
		{3, 3, 100},
		{7, 3, 100},
		{1, 8, 13},
		{5, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, types.ProgressPercent(tt.current, tt.target), "%d/%d", tt.current, tt.target)
	}
}

func TestQuestIsOpenAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	end := now.Add(time.Hour)

	quest := &types.Quest{IsActive: true, StartsAt: now.Add(-time.Hour), EndsAt: &end}

	assert.True(t, quest.IsOpenAt(now))
	assert.False(t, quest.IsOpenAt(now.Add(-2*time.Hour)))
	assert.False(t, quest.IsOpenAt(end))

	quest.EndsAt = nil
	assert.True(t, quest.IsOpenAt(now.AddDate(1, 0, 0)))

	quest.IsActive = false
	assert.False(t, quest.IsOpenAt(now))
}

func TestQuestAppliesTo(t *testing.T) {
	t.Parallel()

	lounge := uint64(4)
	other := uint64(5)

	global := &types.Quest{}
	assert.True(t, global.AppliesTo(nil))
	assert.True(t, global.AppliesTo(&lounge))

	scoped := &types.Quest{CommunityID: &lounge}
	assert.True(t, scoped.AppliesTo(&lounge))
	assert.False(t, scoped.AppliesTo(&other))
	assert.False(t, scoped.AppliesTo(nil))
}

func TestActorCanManage(t *testing.T) {
	t.Parallel()

	quest := &types.Quest{CreatorID: 10}

	assert.True(t, types.Actor{UserID: 10}.CanManage(quest))
	assert.False(t, types.Actor{UserID: 11}.CanManage(quest))
	assert.True(t, types.Actor{UserID: 11, IsAdmin: true}.CanManage(quest))
}

func TestRankingQueryNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 1, types.DefaultRankingLimit, 0},
		{"negative page", -4, 10, 1, 10, 0},
		{"clamped limit", 2, 1000, 2, types.MaxRankingLimit, types.MaxRankingLimit},
		{"third page", 3, 25, 3, 25, 50},
		{"huge page", math.MaxInt, 100, types.MaxRankingPage, 100, (types.MaxRankingPage - 1) * 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			query := types.RankingQuery{Page: tt.page, Limit: tt.limit}
			query.Normalize()

			assert.Equal(t, tt.wantPage, query.Page)
			assert.Equal(t, tt.wantLimit, query.Limit)
			assert.Equal(t, tt.wantOffset, query.Offset())
		})
	}
}

func TestFanScoreCategories(t *testing.T) {
	t.Parallel()

	score := &types.FanScore{PostScore: 1, CommentScore: 2, VoteScore: 3, QuestScore: 4, TotalScore: 10, MonthlyScore: 6}

	assert.Equal(t, int64(1), score.CategoryScore(enum.ActionTypePostCreated.Category()))
	assert.Equal(t, int64(2), score.CategoryScore(enum.ActionTypeCommentCreated.Category()))
	assert.Equal(t, int64(3), score.CategoryScore(enum.ActionTypeVoteCast.Category()))
	assert.Equal(t, int64(4), score.CategoryScore(enum.ActionTypeQuestCompleted.Category()))
	assert.Equal(t, int64(10), score.SortScore(enum.RankingSortTotal))
	assert.Equal(t, int64(6), score.SortScore(enum.RankingSortMonthly))
}

func TestBadgeIsActiveAt(t *testing.T) {
	t.Parallel()

	now := time.Now()
	expires := now.Add(time.Minute)

	permanent := &types.FanBadge{}
	assert.True(t, permanent.IsActiveAt(now))

	temporary := &types.FanBadge{ExpiresAt: &expires}
	assert.True(t, temporary.IsActiveAt(now))
	assert.False(t, temporary.IsActiveAt(expires))
	assert.Equal(t, types.GlobalScope, types.ScopeID(nil))
}
