package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/team-Roy/prototype-sub000/internal/batch"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"github.com/team-Roy/prototype-sub000/internal/setup"
	"github.com/team-Roy/prototype-sub000/internal/setup/telemetry"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// BatchLogDir specifies where batch job log files are stored.
const BatchLogDir = "logs/batch_logs"

type jobFunc func(runner *batch.Runner, ctx context.Context) (*batch.Report, error)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:  "batch",
		Usage: "Run scheduled lounge maintenance jobs",
		Commands: []*cli.Command{
			{
				Name:   "monthly",
				Usage:  "Rank every lounge, award Top Fan badges, then reset monthly scores",
				Action: runJob((*batch.Runner).RunMonthly),
			},
			{
				Name:   "rankings",
				Usage:  "Recompute current ranks for every lounge",
				Action: runJob((*batch.Runner).RunRankings),
			},
			{
				Name:   "top-fan",
				Usage:  "Award the monthly Top Fan badge in every lounge",
				Action: runJob((*batch.Runner).RunTopFan),
			},
			{
				Name:   "reset-monthly",
				Usage:  "Zero monthly scores and remember current ranks",
				Action: runJob((*batch.Runner).RunResetMonthly),
			},
			{
				Name:  "quests",
				Usage: "Clear progress of recurring quests",
				Commands: []*cli.Command{
					{
						Name:   "daily",
						Usage:  "Clear daily quest progress",
						Action: runJob(questReset(enum.QuestTypeDaily)),
					},
					{
						Name:   "weekly",
						Usage:  "Clear weekly quest progress",
						Action: runJob(questReset(enum.QuestTypeWeekly)),
					},
				},
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// runJob wraps a batch job in a cli action with its own app lifecycle.
func runJob(job jobFunc) cli.ActionFunc {
	return func(ctx context.Context, _ *cli.Command) error {
		app, err := setup.InitializeApp(ctx, telemetry.ServiceBatch, BatchLogDir)
		if err != nil {
			return err
		}
		defer app.Cleanup()

		runner := batch.New(app.DB, app.Metrics, app.Logger)

		report, err := job(runner, ctx)
		if err != nil {
			app.Logger.Error("Batch job failed", zap.Error(err))
			return err
		}

		app.Logger.Info("Batch job finished",
			zap.String("job", report.Job),
			zap.Int("communities", report.Communities),
			zap.Int64("ranked", report.Ranked),
			zap.Int("topFans", report.TopFans),
			zap.Int64("reset", report.Reset),
			zap.Int64("cleared", report.Cleared))

		return nil
	}
}

func questReset(questType enum.QuestType) jobFunc {
	return func(runner *batch.Runner, ctx context.Context) (*batch.Report, error) {
		return runner.RunQuestReset(ctx, questType)
	}
}
