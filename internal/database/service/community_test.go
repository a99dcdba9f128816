package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-Roy/prototype-sub000/internal/database/dbtest"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
)

func TestUnknownLoungeIsRejected(t *testing.T) {
	t.Parallel()

	f := dbtest.New(t)
	ctx := t.Context()
	svc := f.Client.Service()

	missing := uint64(4242)

	_, err := svc.Score().AddScore(ctx, 1, missing, enum.ActionTypePostCreated, nil)
	require.ErrorIs(t, err, types.ErrCommunityNotFound)

	_, err = svc.Badge().AwardBadge(ctx, 1, &missing, enum.BadgeTypeFirstSteps, nil)
	require.ErrorIs(t, err, types.ErrCommunityNotFound)

	_, err = svc.Badge().AwardTopFanBadge(ctx, missing)
	require.ErrorIs(t, err, types.ErrCommunityNotFound)

	_, err = svc.Quest().CreateQuest(ctx, creator, questInput(enum.ActionTypePostCreated, 1, 10, &missing))
	require.ErrorIs(t, err, types.ErrCommunityNotFound)

	_, err = svc.Quest().UpdateProgress(ctx, 1, enum.ActionTypePostCreated, &missing)
	require.ErrorIs(t, err, types.ErrCommunityNotFound)

	_, err = svc.Engagement().RecordAction(ctx, 1, &missing, enum.ActionTypePostCreated)
	require.ErrorIs(t, err, types.ErrCommunityNotFound)
	require.ErrorIs(t, err, types.ErrNotFound)

	for name, model := range map[string]any{
		"scores": (*types.FanScore)(nil),
		"badges": (*types.FanBadge)(nil),
		"quests": (*types.Quest)(nil),
	} {
		count, err := f.DB.NewSelect().Model(model).Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count, name)
	}

	// Global badges and account-wide actions need no lounge
	_, err = svc.Badge().AwardBadge(ctx, 1, nil, enum.BadgeTypeFirstSteps, nil)
	require.NoError(t, err)

	_, err = svc.Engagement().RecordAction(ctx, 1, nil, enum.ActionTypePostCreated)
	require.NoError(t, err)
}
