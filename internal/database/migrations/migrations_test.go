package migrations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/team-Roy/prototype-sub000/internal/database/dbtest"
	"github.com/team-Roy/prototype-sub000/internal/database/migrations"
)

func TestTablesExistAfterMigration(t *testing.T) {
	t.Parallel()

	tables := migrations.Tables()
	assert.Equal(t, []string{
		"communities", "posts", "comments", "post_votes", "comment_votes",
		"fan_scores", "fan_badges", "quests", "quest_progress",
	}, tables)

	f := dbtest.New(t)
	for _, table := range tables {
		count, err := f.DB.NewSelect().Table(table).Count(t.Context())
		require.NoError(t, err, table)
		assert.Zero(t, count, table)
	}
}
