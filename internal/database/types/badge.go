package types

import (
	"time"

	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
)

// GlobalScope is the community id used for badges that are not tied to a lounge.
const GlobalScope uint64 = 0

// FanBadge is an awarded achievement. A user holds at most one badge of each type per scope.
type FanBadge struct {
	UserID      uint64         `bun:",pk,notnull" json:"userId"`
	CommunityID uint64         `bun:",pk,notnull" json:"communityId"`
	BadgeType   enum.BadgeType `bun:",pk,notnull" json:"badgeType"`
	Name        string         `bun:",notnull"    json:"name"`
	Description string         `bun:",notnull"    json:"description"`
	AwardedAt   time.Time      `bun:",notnull"    json:"awardedAt"`
	ExpiresAt   *time.Time     `json:"expiresAt"`
}

// IsActiveAt reports whether the badge is permanent or not yet expired at t.
func (b *FanBadge) IsActiveAt(t time.Time) bool {
	return b.ExpiresAt == nil || b.ExpiresAt.After(t)
}

// IsGlobal reports whether the badge is not tied to a lounge.
func (b *FanBadge) IsGlobal() bool {
	return b.CommunityID == GlobalScope
}

// ScopeID maps an optional community to the badge scope key.
func ScopeID(communityID *uint64) uint64 {
	if communityID == nil {
		return GlobalScope
	}
	return *communityID
}
