package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

var indexStatements = []struct {
	name string
	up   string
}{
	// Target lookups by lounge
	{"idx_posts_community", `CREATE INDEX IF NOT EXISTS idx_posts_community ON posts (community_id)`},
	{"idx_comments_post", `CREATE INDEX IF NOT EXISTS idx_comments_post ON comments (post_id)`},

	// Vote lookups by user
	{"idx_post_votes_user", `CREATE INDEX IF NOT EXISTS idx_post_votes_user ON post_votes (user_id)`},
	{"idx_comment_votes_user", `CREATE INDEX IF NOT EXISTS idx_comment_votes_user ON comment_votes (user_id)`},

	// Leaderboard ordering
	{"idx_fan_scores_total", `CREATE INDEX IF NOT EXISTS idx_fan_scores_total
		ON fan_scores (community_id, total_score DESC, user_id ASC)`},
	{"idx_fan_scores_monthly", `CREATE INDEX IF NOT EXISTS idx_fan_scores_monthly
		ON fan_scores (community_id, monthly_score DESC, user_id ASC)`},

	// Badge listing
	{"idx_fan_badges_user_awarded", `CREATE INDEX IF NOT EXISTS idx_fan_badges_user_awarded
		ON fan_badges (user_id, awarded_at DESC)`},

	// Quest matching and sweeps
	{"idx_quests_action_active", `CREATE INDEX IF NOT EXISTS idx_quests_action_active
		ON quests (action_type, starts_at) WHERE is_active = true`},
	{"idx_quests_type", `CREATE INDEX IF NOT EXISTS idx_quests_type ON quests (quest_type)`},
	{"idx_quest_progress_quest", `CREATE INDEX IF NOT EXISTS idx_quest_progress_quest ON quest_progress (quest_id)`},
}

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		for _, index := range indexStatements {
			if _, err := db.NewRaw(index.up).Exec(ctx); err != nil {
				return fmt.Errorf("failed to create index %s: %w", index.name, err)
			}
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		for _, index := range indexStatements {
			if _, err := db.NewRaw("DROP INDEX IF EXISTS " + index.name).Exec(ctx); err != nil {
				return fmt.Errorf("failed to drop index %s: %w", index.name, err)
			}
		}

		return nil
	})
}
