package rest

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/team-Roy/prototype-sub000/internal/database"
	"github.com/team-Roy/prototype-sub000/internal/rest/handler"
	"github.com/team-Roy/prototype-sub000/internal/rest/middleware/actor"
	"github.com/team-Roy/prototype-sub000/internal/setup/config"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Server implements the REST API service.
type Server struct {
	voteHandler    *handler.VoteHandler
	scoreHandler   *handler.ScoreHandler
	questHandler   *handler.QuestHandler
	rankingHandler *handler.RankingHandler
}

// NewServer creates a new REST API server.
// The gatherer backs the /metrics endpoint when metrics are enabled.
func NewServer(
	db database.Client, gatherer prometheus.Gatherer, logger *zap.Logger, config *config.RESTConfig,
) (http.Handler, error) {
	// Create server instance with handlers
	server := &Server{
		voteHandler:    handler.NewVoteHandler(db, logger),
		scoreHandler:   handler.NewScoreHandler(db, logger),
		questHandler:   handler.NewQuestHandler(db, logger),
		rankingHandler: handler.NewRankingHandler(db, logger),
	}

	// Create middleware instances
	actorMiddleware := actor.New(logger)

	// Create base router
	router := bunrouter.New()

	// Create API routes group
	router.Use(actorMiddleware.AsRESTMiddleware).WithGroup("/v1", func(g *bunrouter.Group) {
		g.POST("/votes", server.voteHandler.CastVote)
		g.GET("/votes/:type/:id", server.voteHandler.GetVoteStatus)
		g.POST("/actions", server.voteHandler.RecordAction)

		g.GET("/communities/:communityID/ranking", server.rankingHandler.GetRanking)
		g.GET("/communities/:communityID/scores/:userID", server.scoreHandler.GetUserScore)
		g.POST("/communities/:communityID/scores", server.scoreHandler.AddScore)

		g.GET("/users/:userID/scores", server.scoreHandler.GetUserScores)
		g.GET("/users/:userID/badges", server.scoreHandler.GetUserBadges)
		g.GET("/users/:userID/quests", server.questHandler.GetUserProgress)
		g.POST("/badges", server.scoreHandler.AwardBadge)

		g.GET("/quests", server.questHandler.ListQuests)
		g.POST("/quests", server.questHandler.CreateQuest)
		g.GET("/quests/:id", server.questHandler.GetQuest)
		g.PATCH("/quests/:id", server.questHandler.UpdateQuest)
		g.DELETE("/quests/:id", server.questHandler.DeleteQuest)
	})

	// Add Prometheus metrics endpoint
	if config.Server.EnableMetrics && gatherer != nil {
		router.GET("/metrics", bunrouter.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// Add gzip compression
	return gzhttp.GzipHandler(router), nil
}
