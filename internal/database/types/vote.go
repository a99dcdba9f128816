package types

import (
	"time"

	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
)

// Vote is a single user's active vote on a target.
type Vote struct {
	TargetID  uint64        `bun:",pk,notnull" json:"targetId"`
	UserID    uint64        `bun:",pk,notnull" json:"userId"`
	VoteType  enum.VoteType `bun:",notnull"    json:"voteType"`
	CreatedAt time.Time     `bun:",notnull"    json:"createdAt"`
	UpdatedAt time.Time     `bun:",notnull"    json:"updatedAt"`
}

// PostVote is a vote on a post.
type PostVote struct {
	Vote `json:"vote"`
}

// CommentVote is a vote on a comment.
type CommentVote struct {
	Vote `json:"vote"`
}

// VoteRow is implemented by the per-target vote tables.
type VoteRow interface {
	Base() *Vote
}

// Base returns the shared vote fields.
func (v *PostVote) Base() *Vote { return &v.Vote }

// Base returns the shared vote fields.
func (v *CommentVote) Base() *Vote { return &v.Vote }

// VoteStatus is the current counter state of a target as seen by one user.
type VoteStatus struct {
	Target        TargetRef      `json:"target"`
	UpvoteCount   int64          `json:"upvoteCount"`
	DownvoteCount int64          `json:"downvoteCount"`
	UserVote      *enum.VoteType `json:"userVote"`
}

// VoteResult is returned by a cast and carries what the cast changed.
type VoteResult struct {
	VoteStatus

	Outcome     enum.VoteOutcome `json:"outcome"`
	CommunityID uint64           `json:"communityId"`
	AuthorID    uint64           `json:"authorId"`
}
