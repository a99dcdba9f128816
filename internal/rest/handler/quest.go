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

// QuestHandler handles quest endpoints.
type QuestHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewQuestHandler creates a new quest handler.
func NewQuestHandler(db database.Client, logger *zap.Logger) *QuestHandler {
	return &QuestHandler{
		db:     db,
		logger: logger.Named("quest_handler"),
	}
}

// ListQuests returns the open quests with the caller's progress.
// Query parameters: type, communityId and includeCompleted.
func (h *QuestHandler) ListQuests(w http.ResponseWriter, req bunrouter.Request) error {
	var filter types.QuestFilter

	if raw := req.URL.Query().Get("type"); raw != "" {
		questType, err := enum.QuestTypeString(raw)
		if err != nil {
			return writeError(w, req, h.logger, fmt.Errorf("%w: %w", types.ErrValidation, err))
		}
		filter.QuestType = &questType
	}

	var err error
	if filter.CommunityID, err = queryID(req, "communityId"); err != nil {
		return writeError(w, req, h.logger, err)
	}
	if filter.IncludeCompleted, err = queryBool(req, "includeCompleted"); err != nil {
		return writeError(w, req, h.logger, err)
	}

	quests, err := h.db.Service().Quest().ListQuests(req.Context(), filter, callerID(req))
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, restTypes.QuestsResponse{Quests: quests})
}

// GetQuest returns one quest with the caller's progress.
func (h *QuestHandler) GetQuest(w http.ResponseWriter, req bunrouter.Request) error {
	id, err := pathID(req, "id")
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	quest, err := h.db.Service().Quest().GetQuest(req.Context(), id, callerID(req))
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, quest)
}

// CreateQuest stores a new quest owned by the caller.
func (h *QuestHandler) CreateQuest(w http.ResponseWriter, req bunrouter.Request) error {
	caller, err := requireActor(req)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	var body types.QuestInput
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, req, h.logger, err)
	}

	quest, err := h.db.Service().Quest().CreateQuest(req.Context(), caller, &body)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	return writeJSON(w, http.StatusCreated, quest)
}

// UpdateQuest patches a quest the caller may manage.
func (h *QuestHandler) UpdateQuest(w http.ResponseWriter, req bunrouter.Request) error {
	caller, err := requireActor(req)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	id, err := pathID(req, "id")
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	var body types.QuestPatch
	if err := decodeBody(req, &body); err != nil {
		return writeError(w, req, h.logger, err)
	}

	quest, err := h.db.Service().Quest().UpdateQuest(req.Context(), caller, id, &body)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, quest)
}

// DeleteQuest removes a quest the caller may manage.
func (h *QuestHandler) DeleteQuest(w http.ResponseWriter, req bunrouter.Request) error {
	caller, err := requireActor(req)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	id, err := pathID(req, "id")
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	if err := h.db.Service().Quest().DeleteQuest(req.Context(), caller, id); err != nil {
		return writeError(w, req, h.logger, err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// GetUserProgress returns a user's quest progress. Query parameter: completed.
func (h *QuestHandler) GetUserProgress(w http.ResponseWriter, req bunrouter.Request) error {
	userID, err := pathID(req, "userID")
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	onlyCompleted, err := queryBool(req, "completed")
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	quests, err := h.db.Service().Quest().GetUserProgress(req.Context(), userID, onlyCompleted)
	if err != nil {
		return writeError(w, req, h.logger, err)
	}

	return writeJSON(w, http.StatusOK, restTypes.QuestsResponse{Quests: quests})
}
