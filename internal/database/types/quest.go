package types

import (
	"math"
	"time"

	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"github.com/uptrace/bun"
)

// Quest is a reward-bearing goal definition.
// A nil CommunityID makes the quest account-wide.
type Quest struct {
	ID          uint64          `bun:",pk,autoincrement" json:"id"`
	Title       string          `bun:",notnull"          json:"title"`
	Description string          `bun:",notnull"          json:"description"`
	QuestType   enum.QuestType  `bun:",notnull"          json:"questType"`
	ActionType  enum.ActionType `bun:",notnull"          json:"actionType"`
	TargetCount int64           `bun:",notnull"          json:"targetCount"`
	RewardScore int64           `bun:",notnull"          json:"rewardScore"`
	RewardBadge *enum.BadgeType `json:"rewardBadge"`
	CommunityID *uint64         `json:"communityId"`
	CreatorID   uint64          `bun:",notnull"          json:"creatorId"`
	StartsAt    time.Time       `bun:",notnull"          json:"startsAt"`
	EndsAt      *time.Time      `json:"endsAt"`
	IsActive    bool            `bun:",notnull"          json:"isActive"`
	CreatedAt   time.Time       `bun:",notnull"          json:"createdAt"`
	UpdatedAt   time.Time       `bun:",notnull"          json:"updatedAt"`
}

// IsOpenAt reports whether the quest is active and its window covers t.
func (q *Quest) IsOpenAt(t time.Time) bool {
	if !q.IsActive || t.Before(q.StartsAt) {
		return false
	}
	return q.EndsAt == nil || t.Before(*q.EndsAt)
}

// AppliesTo reports whether an action carrying the given community advances the quest.
// Account-wide quests apply to every action; lounge quests need the same lounge.
func (q *Quest) AppliesTo(communityID *uint64) bool {
	if q.CommunityID == nil {
		return true
	}
	return communityID != nil && *communityID == *q.CommunityID
}

// QuestProgress tracks one user's progress on one quest. Completed rows are frozen.
type QuestProgress struct {
	bun.BaseModel `bun:"table:quest_progress,alias:qp"`

	UserID       uint64     `bun:",pk,notnull" json:"userId"`
	QuestID      uint64     `bun:",pk,notnull" json:"questId"`
	CurrentCount int64      `bun:",notnull"    json:"currentCount"`
	IsCompleted  bool       `bun:",notnull"    json:"isCompleted"`
	CompletedAt  *time.Time `json:"completedAt"`
	CreatedAt    time.Time  `bun:",notnull"    json:"createdAt"`
	UpdatedAt    time.Time  `bun:",notnull"    json:"updatedAt"`
}

// QuestInput is the payload for creating a quest.
// Quest and action types are pointers so an omitted value is rejected instead of reading as the zero member.
type QuestInput struct {
	Title       string           `json:"title"       validate:"required,max=100"`
	Description string           `json:"description" validate:"max=1000"`
	QuestType   *enum.QuestType  `json:"questType"   validate:"required,enum"`
	ActionType  *enum.ActionType `json:"actionType"  validate:"required,trackable"`
	TargetCount int64            `json:"targetCount" validate:"gt=0"`
	RewardScore int64            `json:"rewardScore" validate:"gte=0"`
	RewardBadge *enum.BadgeType  `json:"rewardBadge" validate:"omitempty,enum"`
	CommunityID *uint64          `json:"communityId" validate:"omitempty,gt=0"`
	StartsAt    *time.Time       `json:"startsAt"`
	EndsAt      *time.Time       `json:"endsAt"`
	IsActive    *bool            `json:"isActive"`
}

// QuestPatch holds the fields of a quest update. Nil fields are left untouched.
// The clear flags reset a nullable field and cannot be combined with a new value for it.
type QuestPatch struct {
	Title            *string          `json:"title"            validate:"omitempty,min=1,max=100"`
	Description      *string          `json:"description"      validate:"omitempty,max=1000"`
	QuestType        *enum.QuestType  `json:"questType"        validate:"omitempty,enum"`
	ActionType       *enum.ActionType `json:"actionType"       validate:"omitempty,trackable"`
	TargetCount      *int64           `json:"targetCount"      validate:"omitempty,gt=0"`
	RewardScore      *int64           `json:"rewardScore"      validate:"omitempty,gte=0"`
	RewardBadge      *enum.BadgeType  `json:"rewardBadge"      validate:"omitempty,enum"`
	ClearRewardBadge bool             `json:"clearRewardBadge" validate:"excluded_with=RewardBadge"`
	CommunityID      *uint64          `json:"communityId"      validate:"omitempty,gt=0"`
	ClearCommunity   bool             `json:"clearCommunity"   validate:"excluded_with=CommunityID"`
	StartsAt         *time.Time       `json:"startsAt"`
	EndsAt           *time.Time       `json:"endsAt"`
	ClearEndsAt      bool             `json:"clearEndsAt"      validate:"excluded_with=EndsAt"`
	IsActive         *bool            `json:"isActive"`
}

// QuestFilter narrows a quest listing.
type QuestFilter struct {
	QuestType        *enum.QuestType
	CommunityID      *uint64
	IncludeCompleted bool
}

// QuestView is a quest joined with one user's progress on it.
type QuestView struct {
	*Quest

	CurrentCount int64      `json:"currentCount"`
	IsCompleted  bool       `json:"isCompleted"`
	CompletedAt  *time.Time `json:"completedAt"`
	Percent      int        `json:"percent"`
}

// NewQuestView joins a quest with an optional progress row.
func NewQuestView(quest *Quest, progress *QuestProgress) *QuestView {
	view := &QuestView{Quest: quest}
	if progress != nil {
		view.CurrentCount = progress.CurrentCount
		view.IsCompleted = progress.IsCompleted
		view.CompletedAt = progress.CompletedAt
	}
	view.Percent = ProgressPercent(view.CurrentCount, quest.TargetCount)
	return view
}

// ProgressPercent returns min(100, round(current / target * 100)).
func ProgressPercent(current, target int64) int {
	if target <= 0 {
		return 0
	}
	percent := int(math.Round(float64(current) / float64(target) * 100))
	return min(percent, 100)
}

// Actor is the caller of a mutating operation, as resolved by the auth and role collaborators.
type Actor struct {
	UserID  uint64
	IsAdmin bool
}

// CanManage reports whether the actor may update or delete the quest.
func (a Actor) CanManage(q *Quest) bool {
	return a.IsAdmin || q.CreatorID == a.UserID
}
