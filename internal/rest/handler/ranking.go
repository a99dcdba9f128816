package handler

import (
	"fmt"
	"net/http"

	"github.com/team-Roy/prototype-sub000/internal/database"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// RankingHandler handles leaderboard endpoints.
type RankingHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewRankingHandler creates a new ranking handler.
func NewRankingHandler(db database.Client, logger *zap.Logger) *RankingHandler {
	return &RankingHandler{
		db:     db,
		logger: logger.Named("ranking_handler"),
	}
}

// GetRanking returns one leaderboard page of a lounge.
// Query parameters: sort (TOTAL or MONTHLY), page and limit.
func (h *RankingHandler) GetRanking(w http.ResponseWriter, req bunrouter.Request) error {
	communityID, err := pathID(req, "communityID")
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	query := types.RankingQuery{
		CommunityID:      communityID,
		Sort:             enum.RankingSortTotal,
		RequestingUserID: callerID(req),
	}

	if raw := req.URL.Query().Get("sort"); raw != "" {
		query.Sort, err = enum.RankingSortString(raw)
		if err != nil {
			return writeError(w, req, h.logger, fmt.Errorf("%w: %w", types.ErrInvalidSort, err))
		}
	}

	if query.Page, err = queryInt(req, "page"); err != nil {
		return writeError(w, req, h.logger, err)
	}
	if query.Limit, err = queryInt(req, "limit"); err != nil {
		return writeError(w, req, h.logger, err)
	}

	page, err := h.db.Service().Ranking().GetRanking(req.Context(), query)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, page)
}
