// Package batch runs the periodic engine jobs an external scheduler triggers.
package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/team-Roy/prototype-sub000/internal/database"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"github.com/team-Roy/prototype-sub000/internal/setup/telemetry"
	"go.uber.org/zap"
)

// Job names used in logs and metrics.
const (
	JobMonthly      = "monthly"
	JobRankings     = "rankings"
	JobTopFan       = "top_fan"
	JobResetMonthly = "reset_monthly"
	JobQuestsDaily  = "quests_daily"
	JobQuestsWeekly = "quests_weekly"
)

// ErrNotRecurring is returned when a quest reset is requested for a type that is never swept.
var ErrNotRecurring = errors.New("quest type is not recurring")

// Report summarizes what a job changed.
type Report struct {
	Job         string `json:"job"`
	Communities int    `json:"communities"`
	Ranked      int64  `json:"ranked"`
	TopFans     int    `json:"topFans"`
	Reset       int64  `json:"reset"`
	Cleared     int64  `json:"cleared"`
}

// Runner executes batch jobs against the database services.
type Runner struct {
	db      database.Client
	metrics *telemetry.Metrics
	logger  *zap.Logger
}

// New creates a batch runner.
func New(db database.Client, metrics *telemetry.Metrics, logger *zap.Logger) *Runner {
	return &Runner{
		db:      db,
		metrics: metrics,
		logger:  logger.Named("batch"),
	}
}

// RunMonthly closes a month. Every lounge is ranked and gets its top fan before monthly
// scores are reset. The reset is skipped when any lounge failed so no month is lost.
func (r *Runner) RunMonthly(ctx context.Context) (*Report, error) {
	report := &Report{Job: JobMonthly}

	err := r.forEachCommunity(ctx, report, func(ctx context.Context, communityID uint64) error {
		if err := r.rankCommunity(ctx, report, communityID); err != nil {
			return err
		}
		return r.awardTopFan(ctx, report, communityID)
	})
	if err == nil {
		report.Reset, err = r.db.Service().Score().ResetMonthlyScores(ctx)
	}

	r.finish(report, err)
	return report, err
}

// RunRankings recomputes the stored rank of every lounge member.
func (r *Runner) RunRankings(ctx context.Context) (*Report, error) {
	report := &Report{Job: JobRankings}

	err := r.forEachCommunity(ctx, report, func(ctx context.Context, communityID uint64) error {
		return r.rankCommunity(ctx, report, communityID)
	})

	r.finish(report, err)
	return report, err
}

// RunTopFan awards the monthly top fan badge in every lounge.
func (r *Runner) RunTopFan(ctx context.Context) (*Report, error) {
	report := &Report{Job: JobTopFan}

	err := r.forEachCommunity(ctx, report, func(ctx context.Context, communityID uint64) error {
		return r.awardTopFan(ctx, report, communityID)
	})

	r.finish(report, err)
	return report, err
}

// RunResetMonthly snapshots ranks and zeroes every monthly score.
func (r *Runner) RunResetMonthly(ctx context.Context) (*Report, error) {
	report := &Report{Job: JobResetMonthly}

	var err error
	report.Reset, err = r.db.Service().Score().ResetMonthlyScores(ctx)

	r.finish(report, err)
	return report, err
}

// RunQuestReset clears progress on the daily or weekly quests.
func (r *Runner) RunQuestReset(ctx context.Context, questType enum.QuestType) (*Report, error) {
	quests := r.db.Service().Quest()

	var (
		report *Report
		err    error
	)

	switch questType {
	case enum.QuestTypeDaily:
		report = &Report{Job: JobQuestsDaily}
		report.Cleared, err = quests.ResetDailyQuests(ctx)
	case enum.QuestTypeWeekly:
		report = &Report{Job: JobQuestsWeekly}
		report.Cleared, err = quests.ResetWeeklyQuests(ctx)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotRecurring, questType)
	}

	r.finish(report, err)
	return report, err
}

// forEachCommunity runs fn for every lounge. A failing lounge is logged and the
// rest still run; the failures are returned together.
func (r *Runner) forEachCommunity(
	ctx context.Context, report *Report, fn func(ctx context.Context, communityID uint64) error,
) error {
	ids, err := r.db.Model().Community().GetIDs(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		if err := fn(ctx, id); err != nil {
			r.logger.Error("Batch step failed",
				zap.String("job", report.Job),
				zap.Uint64("communityID", id),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("community %d: %w", id, err))
			continue
		}

		report.Communities++
	}

	return errors.Join(errs...)
}

func (r *Runner) rankCommunity(ctx context.Context, report *Report, communityID uint64) error {
	ranked, err := r.db.Service().Score().UpdateRankings(ctx, communityID)
	if err != nil {
		return fmt.Errorf("failed to update rankings: %w", err)
	}

	report.Ranked += ranked
	return nil
}

func (r *Runner) awardTopFan(ctx context.Context, report *Report, communityID uint64) error {
	badge, err := r.db.Service().Badge().AwardTopFanBadge(ctx, communityID)
	if err != nil {
		return fmt.Errorf("failed to award top fan: %w", err)
	}

	if badge != nil {
		report.TopFans++
	}
	return nil
}

func (r *Runner) finish(report *Report, err error) {
	r.metrics.BatchRun(report.Job, err)

	if err != nil {
		r.logger.Error("Batch job failed", zap.String("job", report.Job), zap.Error(err))
		return
	}

	r.logger.Info("Batch job finished",
		zap.String("job", report.Job),
		zap.Int("communities", report.Communities),
		zap.Int64("ranked", report.Ranked),
		zap.Int("topFans", report.TopFans),
		zap.Int64("reset", report.Reset),
		zap.Int64("cleared", report.Cleared))
}
