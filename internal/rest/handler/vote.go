package handler

import (
	"fmt"
	"net/http"

	"github.com/team-Roy/prototype-sub000/internal/database"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	restTypes "github.com/team-Roy/prototype-sub000/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// VoteHandler handles vote and action endpoints.
type VoteHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewVoteHandler creates a new vote handler.
func NewVoteHandler(db database.Client, logger *zap.Logger) *VoteHandler {
	return &VoteHandler{
		db:     db,
		logger: logger.Named("vote_handler"),
	}
}

// CastVote toggles the caller's vote on a target and credits the voter.
func (h *VoteHandler) CastVote(w http.ResponseWriter, req bunrouter.Request) error {
	caller, err := requireActor(req)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	var body restTypes.CastVoteRequest
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, req, h.logger, err)
	}

	ref := types.TargetRef{Type: body.TargetType, ID: body.TargetID}

	result, err := h.db.Service().Engagement().CastVote(req.Context(), ref, caller.UserID, body.VoteType)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, result)
}

// GetVoteStatus returns a target's counters and the caller's vote on it.
func (h *VoteHandler) GetVoteStatus(w http.ResponseWriter, req bunrouter.Request) error {
	targetType, err := enum.TargetTypeString(req.Param("type"))
	if err != nil {
		return writeError(w, req, h.logger, fmt.Errorf("%w: %w", types.ErrInvalidTarget, err))
	}

	id, err := pathID(req, "id")
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	var userID uint64
	if caller := callerID(req); caller != nil {
		userID = *caller
	}

	status, err := h.db.Service().Vote().GetVoteStatus(req.Context(), types.TargetRef{Type: targetType, ID: id}, userID)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, status)
}

// RecordAction credits the caller for a content action.
func (h *VoteHandler) RecordAction(w http.ResponseWriter, req bunrouter.Request) error {
	caller, err := requireActor(req)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	var body restTypes.RecordActionRequest
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, req, h.logger, err)
	}

	result, err := h.db.Service().Engagement().RecordAction(req.Context(), caller.UserID, body.CommunityID, body.ActionType)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, result)
}
