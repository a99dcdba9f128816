package migrations

import (
	"context"
	"fmt"

	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/uptrace/bun"
)

// schemaModels lists the tables in dependency order.
var schemaModels = []struct {
	model any
	name  string
}{
	{(*types.Community)(nil), "communities"},
	{(*types.Post)(nil), "posts"},
	{(*types.Comment)(nil), "comments"},
	{(*types.PostVote)(nil), "post_votes"},
	{(*types.CommentVote)(nil), "comment_votes"},
	{(*types.FanScore)(nil), "fan_scores"},
	{(*types.FanBadge)(nil), "fan_badges"},
	{(*types.Quest)(nil), "quests"},
	{(*types.QuestProgress)(nil), "quest_progress"},
}

// Tables returns the names of the engine's tables in dependency order.
func Tables() []string {
	names := make([]string, 0, len(schemaModels))
	for _, table := range schemaModels {
		names = append(names, table.name)
	}
	return names
}

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		for _, table := range schemaModels {
			_, err := db.NewCreateTable().
				Model(table.model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table %s: %w", table.name, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		for i := len(schemaModels) - 1; i >= 0; i-- {
			table := schemaModels[i]

			_, err := db.NewDropTable().
				Model(table.model).
				IfExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop table %s: %w", table.name, err)
			}
		}

		return nil
	})
}
