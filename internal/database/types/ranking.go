package types

import "github.com/team-Roy/prototype-sub000/internal/database/types/enum"

// Ranking paging limits. MaxRankingPage keeps the offset far from integer overflow.
const (
	DefaultRankingLimit = 20
	MaxRankingLimit     = 100
	MaxRankingPage      = 1_000_000
)

// RankingQuery describes one leaderboard page request.
type RankingQuery struct {
	CommunityID      uint64
	Sort             enum.RankingSort
	Page             int
	Limit            int
	RequestingUserID *uint64
}

// Normalize clamps paging values into their valid ranges.
func (q *RankingQuery) Normalize() {
	switch {
	case q.Page < 1:
		q.Page = 1
	case q.Page > MaxRankingPage:
		q.Page = MaxRankingPage
	}
	switch {
	case q.Limit <= 0:
		q.Limit = DefaultRankingLimit
	case q.Limit > MaxRankingLimit:
		q.Limit = MaxRankingLimit
	}
}

// Offset returns the number of entries before the requested page.
func (q *RankingQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// RankingEntry is one row of a leaderboard page.
type RankingEntry struct {
	UserID       uint64 `json:"userId"`
	Score        int64  `json:"score"`
	TotalScore   int64  `json:"totalScore"`
	MonthlyScore int64  `json:"monthlyScore"`
	Rank         int    `json:"rank"`
	RankChange   *int   `json:"rankChange"`
}

// UserRank is the requesting user's competition rank.
type UserRank struct {
	Rank  int   `json:"rank"`
	Score int64 `json:"score"`
}

// RankingPage is a leaderboard page.
type RankingPage struct {
	CommunityID uint64           `json:"communityId"`
	Sort        enum.RankingSort `json:"sort"`
	Page        int              `json:"page"`
	Limit       int              `json:"limit"`
	Total       int              `json:"total"`
	Entries     []*RankingEntry  `json:"entries"`
	MyRank      *UserRank        `json:"myRank"`
}
