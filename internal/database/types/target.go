package types

import (
	"time"

	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
)

// Target holds the fields shared by every votable piece of content.
// Rows are owned by the content service; the engine only maintains the counters.
type Target struct {
	ID            uint64    `bun:",pk,autoincrement" json:"id"`
	CommunityID   uint64    `bun:",notnull"          json:"communityId"`
	AuthorID      uint64    `bun:",notnull"          json:"authorId"`
	UpvoteCount   int64     `bun:",notnull"          json:"upvoteCount"`
	DownvoteCount int64     `bun:",notnull"          json:"downvoteCount"`
	IsDeleted     bool      `bun:",notnull"          json:"isDeleted"`
	CreatedAt     time.Time `bun:",notnull"          json:"createdAt"`
}

// Post is a lounge post.
type Post struct {
	Target `json:"target"`
}

// Comment is a comment on a post.
type Comment struct {
	Target `json:"target"`

	PostID uint64 `bun:",notnull" json:"postId"`
}

// TargetRow is implemented by the tables holding vote targets.
type TargetRow interface {
	Base() *Target
}

// Base returns the shared target fields.
func (p *Post) Base() *Target { return &p.Target }

// Base returns the shared target fields.
func (c *Comment) Base() *Target { return &c.Target }

// TargetRef identifies a single vote target.
type TargetRef struct {
	Type enum.TargetType `json:"type"`
	ID   uint64          `json:"id"`
}

// Community is a lounge. Rows are owned by the lounge service.
type Community struct {
	ID        uint64    `bun:",pk,autoincrement" json:"id"`
	Name      string    `bun:",notnull"          json:"name"`
	CreatedAt time.Time `bun:",notnull"          json:"createdAt"`
}
