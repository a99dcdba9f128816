package handler

import (
	"net/http"

	"github.com/team-Roy/prototype-sub000/internal/database"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	restTypes "github.com/team-Roy/prototype-sub000/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// ScoreHandler handles score and badge endpoints.
type ScoreHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(db database.Client, logger *zap.Logger) *ScoreHandler {
	return &ScoreHandler{
		db:     db,
		logger: logger.Named("score_handler"),
	}
}

// GetUserScore returns a user's score in a lounge with the competition rank.
func (h *ScoreHandler) GetUserScore(w http.ResponseWriter, req bunrouter.Request) error {
	communityID, err := pathID(req, "communityID")
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	userID, err := pathID(req, "userID")
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	exists, err := h.db.Model().Community().Exists(req.Context(), communityID)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}
	if !exists {
		return writeError(w, req, h.logger, types.ErrCommunityNotFound)
	}

	score, err := h.db.Service().Score().GetUserScore(req.Context(), userID, communityID)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, score)
}

// GetUserScores returns every lounge score of a user.
func (h *ScoreHandler) GetUserScores(w http.ResponseWriter, req bunrouter.Request) error {
	userID, err := pathID(req, "userID")
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	scores, err := h.db.Service().Score().GetAllScoresForUser(req.Context(), userID)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, restTypes.ScoresResponse{Scores: scores})
}

// AddScore credits a user in a lounge. Admin only.
func (h *ScoreHandler) AddScore(w http.ResponseWriter, req bunrouter.Request) error {
	if _, err := requireAdmin(req); err != nil {
		return writeError(w, req, h.logger, err)
	}

	communityID, err := pathID(req, "communityID")
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	var body restTypes.AddScoreRequest
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, req, h.logger, err)
	}

	score, err := h.db.Service().Score().AddScore(req.Context(), body.UserID, communityID, body.ActionType, body.Amount)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, score)
}

// GetUserBadges returns a user's unexpired badges, optionally for one lounge.
func (h *ScoreHandler) GetUserBadges(w http.ResponseWriter, req bunrouter.Request) error {
	userID, err := pathID(req, "userID")
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	communityID, err := queryID(req, "communityId")
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	badges, err := h.db.Service().Badge().GetUserBadges(req.Context(), userID, communityID)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, restTypes.BadgesResponse{Badges: badges})
}

// AwardBadge grants a badge. Admin only.
func (h *ScoreHandler) AwardBadge(w http.ResponseWriter, req bunrouter.Request) error {
	if _, err := requireAdmin(req); err != nil {
		return writeError(w, req, h.logger, err)
	}

	var body restTypes.AwardBadgeRequest
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, req, h.logger, err)
	}

	badge, err := h.db.Service().Badge().AwardBadge(
		req.Context(), body.UserID, body.CommunityID, body.BadgeType, body.ExpiresAt,
	)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, badge)
}
