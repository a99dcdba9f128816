package service_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-Roy/prototype-sub000/internal/database/dbtest"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
)

func countBadges(t *testing.T, f *dbtest.Fixture, userID uint64) int {
	t.Helper()

	count, err := f.DB.NewSelect().Model((*types.FanBadge)(nil)).
		Where("user_id = ?", userID).
		Count(t.Context())
	require.NoError(t, err)

	return count
}

func TestAwardBadgeIdempotent(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	badges := f.Client.Service().Badge()

	lounge := f.Community(t, "lounge")

	first, err := badges.AwardBadge(ctx, 1, &lounge.ID, enum.BadgeTypeFirstSteps, nil)
	require.NoError(t, err)
	assert.Equal(t, "First Steps", first.Name)
	assert.Nil(t, first.ExpiresAt)

	expiresAt := time.Now().Add(48 * time.Hour).UTC()
	second, err := badges.AwardBadge(ctx, 1, &lounge.ID, enum.BadgeTypeFirstSteps, &expiresAt)
	require.NoError(t, err)

	assert.Equal(t, 1, countBadges(t, f, 1))
	assert.Equal(t, first.AwardedAt.Unix(), second.AwardedAt.Unix())
	require.NotNil(t, second.ExpiresAt)
	assert.WithinDuration(t, expiresAt, *second.ExpiresAt, time.Second)

	// The same type in another scope is a separate badge
	_, err = badges.AwardBadge(ctx, 1, nil, enum.BadgeTypeFirstSteps, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, countBadges(t, f, 1))

	_, err = badges.AwardBadge(ctx, 1, nil, enum.BadgeType(99), nil)
	require.ErrorIs(t, err, types.ErrInvalidBadge)
}

func TestActiveCommenterAwardedOnce(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	scores := f.Client.Service().Score()

	lounge := f.Community(t, "lounge")

	// 39 comments at 5 points stay below the threshold
	for range 39 {
		_, err := scores.AddScore(ctx, 4, lounge.ID, enum.ActionTypeCommentCreated, nil)
		require.NoError(t, err)
	}
	assert.Zero(t, countBadges(t, f, 4))

	for range 5 {
		_, err := scores.AddScore(ctx, 4, lounge.ID, enum.ActionTypeCommentCreated, nil)
		require.NoError(t, err)
	}

	held, err := f.Client.Service().Badge().GetUserBadges(ctx, 4, &lounge.ID)
	require.NoError(t, err)
	require.Len(t, held, 1)
	assert.Equal(t, enum.BadgeTypeActiveCommenter, held[0].BadgeType)
	assert.Equal(t, lounge.ID, held[0].CommunityID)
	assert.Nil(t, held[0].ExpiresAt)
	assert.Equal(t, 1, countBadges(t, f, 4))
}

func TestContentCreatorThreshold(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	scores := f.Client.Service().Score()

	lounge := f.Community(t, "lounge")

	_, err := scores.AddScore(ctx, 1, lounge.ID, enum.ActionTypePostCreated, amount(499))
	require.NoError(t, err)
	assert.Zero(t, countBadges(t, f, 1))

	// Quest points do not count toward the post threshold
	_, err = scores.AddScore(ctx, 1, lounge.ID, enum.ActionTypeQuestCompleted, amount(1000))
	require.NoError(t, err)
	assert.Zero(t, countBadges(t, f, 1))

	_, err = scores.AddScore(ctx, 1, lounge.ID, enum.ActionTypePostCreated, amount(1))
	require.NoError(t, err)

	held, err := f.Client.Service().Badge().GetUserBadges(ctx, 1, nil)
	require.NoError(t, err)
	require.Len(t, held, 1)
	assert.Equal(t, enum.BadgeTypeContentCreator, held[0].BadgeType)
}

func TestGetUserBadges(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	badges := f.Client.Service().Badge()

	lounge := f.Community(t, "lounge")
	other := f.Community(t, "other")

	expired := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	_, err := badges.AwardBadge(ctx, 1, &lounge.ID, enum.BadgeTypeFirstSteps, nil)
	require.NoError(t, err)
	_, err = badges.AwardBadge(ctx, 1, &lounge.ID, enum.BadgeTypeTopFan, &expired)
	require.NoError(t, err)
	_, err = badges.AwardBadge(ctx, 1, &other.ID, enum.BadgeTypeTopFan, &future)
	require.NoError(t, err)
	_, err = badges.AwardBadge(ctx, 1, nil, enum.BadgeTypeQuestChampion, nil)
	require.NoError(t, err)

	all, err := badges.GetUserBadges(ctx, 1, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	scoped, err := badges.GetUserBadges(ctx, 1, &lounge.ID)
	require.NoError(t, err)
	require.Len(t, scoped, 2)

	kinds := []enum.BadgeType{scoped[0].BadgeType, scoped[1].BadgeType}
	assert.ElementsMatch(t, []enum.BadgeType{enum.BadgeTypeFirstSteps, enum.BadgeTypeQuestChampion}, kinds)

	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].AwardedAt.After(all[i-1].AwardedAt), "badges must be newest first")
	}
}

func TestAwardTopFanTieGoesToLowestUser(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	scores := f.Client.Service().Score()

	lounge := f.Community(t, "lounge")
	empty := f.Community(t, "empty")

	for _, user := range []uint64{9, 3, 5} {
		_, err := scores.AddScore(ctx, user, lounge.ID, enum.ActionTypePostCreated, amount(30))
		require.NoError(t, err)
	}

	badge, err := f.Client.Service().Badge().AwardTopFanBadge(ctx, lounge.ID)
	require.NoError(t, err)
	require.NotNil(t, badge)
	assert.Equal(t, uint64(3), badge.UserID)

	badge, err = f.Client.Service().Badge().AwardTopFanBadge(ctx, empty.ID)
	require.NoError(t, err)
	assert.Nil(t, badge)
}

func TestBadgeMetricCountsNewAwardsOnly(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	badges := f.Client.Service().Badge()
	scores := f.Client.Service().Score()

	lounge := f.Community(t, "lounge")

	_, err := badges.AwardBadge(ctx, 1, &lounge.ID, enum.BadgeTypeFirstSteps, nil)
	require.NoError(t, err)

	expiresAt := time.Now().Add(24 * time.Hour)
	_, err = badges.AwardBadge(ctx, 1, &lounge.ID, enum.BadgeTypeFirstSteps, &expiresAt)
	require.NoError(t, err)

	// Every score change past the threshold re-checks the held badge
	for range 3 {
		_, err = scores.AddScore(ctx, 2, lounge.ID, enum.ActionTypeCommentCreated, amount(200))
		require.NoError(t, err)
	}

	expected := `
# HELP lounge_badges_awarded_total Badges newly granted, by badge type.
# TYPE lounge_badges_awarded_total counter
lounge_badges_awarded_total{badge_type="ACTIVE_COMMENTER"} 1
lounge_badges_awarded_total{badge_type="FIRST_STEPS"} 1
`
	require.NoError(t, testutil.GatherAndCompare(f.Registry, strings.NewReader(expected), "lounge_badges_awarded_total"))
}
