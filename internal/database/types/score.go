package types

import (
	"time"

	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
)

// FanScore is a user's score within one lounge.
// TotalScore always equals the sum of the four category subtotals.
type FanScore struct {
	UserID       uint64    `bun:",pk,notnull"          json:"userId"`
	CommunityID  uint64    `bun:",pk,notnull"          json:"communityId"`
	TotalScore   int64     `bun:",notnull"             json:"totalScore"`
	MonthlyScore int64     `bun:",notnull"             json:"monthlyScore"`
	PostScore    int64     `bun:",notnull"             json:"postScore"`
	CommentScore int64     `bun:",notnull"             json:"commentScore"`
	VoteScore    int64     `bun:",notnull"             json:"voteScore"`
	QuestScore   int64     `bun:",notnull"             json:"questScore"`
	Rank         int       `bun:"current_rank,notnull" json:"rank"`
	PreviousRank *int      `bun:"previous_rank"        json:"previousRank"`
	CreatedAt    time.Time `bun:",notnull"             json:"createdAt"`
	UpdatedAt    time.Time `bun:",notnull"             json:"updatedAt"`
}

// CategoryScore returns the subtotal of the given category.
func (s *FanScore) CategoryScore(category enum.ScoreCategory) int64 {
	switch category {
	case enum.ScoreCategoryPost:
		return s.PostScore
	case enum.ScoreCategoryComment:
		return s.CommentScore
	case enum.ScoreCategoryVote:
		return s.VoteScore
	case enum.ScoreCategoryQuest:
		return s.QuestScore
	}
	return 0
}

// SortScore returns the field a leaderboard sort orders by.
func (s *FanScore) SortScore(sort enum.RankingSort) int64 {
	if sort == enum.RankingSortMonthly {
		return s.MonthlyScore
	}
	return s.TotalScore
}

// UserScore is a fan score together with the user's competition rank by total score.
type UserScore struct {
	*FanScore

	CompetitionRank int `json:"competitionRank"`
}
