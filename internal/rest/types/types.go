package types

import (
	"time"

	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
)

// CastVoteRequest is the body of the cast vote endpoint.
type CastVoteRequest struct {
	TargetType enum.TargetType `json:"targetType"`
	TargetID   uint64          `json:"targetId"`
	VoteType   enum.VoteType   `json:"voteType"`
}

// RecordActionRequest is the body of the record action endpoint.
// A missing community records an action outside any lounge.
type RecordActionRequest struct {
	CommunityID *uint64         `json:"communityId"`
	ActionType  enum.ActionType `json:"actionType"`
}

// AddScoreRequest is the body of the manual score endpoint.
type AddScoreRequest struct {
	UserID     uint64          `json:"userId"`
	ActionType enum.ActionType `json:"actionType"`
	Amount     *int64          `json:"amount"`
}

// AwardBadgeRequest is the body of the manual badge endpoint.
type AwardBadgeRequest struct {
	UserID      uint64         `json:"userId"`
	CommunityID *uint64        `json:"communityId"`
	BadgeType   enum.BadgeType `json:"badgeType"`
	ExpiresAt   *time.Time     `json:"expiresAt"`
}

// ScoresResponse lists a user's lounge scores.
type ScoresResponse struct {
	Scores []*types.FanScore `json:"scores"`
}

// BadgesResponse lists a user's badges.
type BadgesResponse struct {
	Badges []*types.FanBadge `json:"badges"`
}

// QuestsResponse lists quests with the caller's progress.
type QuestsResponse struct {
	Quests []*types.QuestView `json:"quests"`
}

// ErrorResponse is returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
