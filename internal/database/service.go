package database

import (
	"github.com/team-Roy/prototype-sub000/internal/database/service"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Service provides access to all business logic services.
type Service struct {
	vote       *service.VoteService
	score      *service.ScoreService
	badge      *service.BadgeService
	quest      *service.QuestService
	ranking    *service.RankingService
	engagement *service.EngagementService
}

// NewService creates a new service instance with all services.
func NewService(db *bun.DB, repo *Repository, opts Options, logger *zap.Logger) *Service {
	badge := service.NewBadge(db, repo.Badge(), repo.Score(), repo.Community(), opts.Metrics, logger)
	score := service.NewScore(
		db, repo.Score(), repo.Community(), badge, opts.Engine.Points, opts.Metrics, logger,
	)
	vote := service.NewVote(
		db, repo.Target(), repo.Vote(), opts.Dispatcher, opts.Engine.MilestoneStep, opts.Metrics, logger,
	)
	quest := service.NewQuest(
		db, repo.Quest(), repo.Progress(), repo.Community(), score, badge, opts.Metrics, logger,
	)
	ranking := service.NewRanking(repo.Score(), repo.Community(), logger)
	engagement := service.NewEngagement(db, repo.Community(), vote, score, quest, logger)

	return &Service{
		vote:       vote,
		score:      score,
		badge:      badge,
		quest:      quest,
		ranking:    ranking,
		engagement: engagement,
	}
}

// Vote returns the vote ledger service.
func (s *Service) Vote() *service.VoteService {
	return s.vote
}

// Score returns the score ledger service.
func (s *Service) Score() *service.ScoreService {
	return s.score
}

// Badge returns the badge awarder service.
func (s *Service) Badge() *service.BadgeService {
	return s.badge
}

// Quest returns the quest engine service.
func (s *Service) Quest() *service.QuestService {
	return s.quest
}

// Ranking returns the ranking calculator service.
func (s *Service) Ranking() *service.RankingService {
	return s.ranking
}

// Engagement returns the service tying user actions to scores and quests.
func (s *Service) Engagement() *service.EngagementService {
	return s.engagement
}
