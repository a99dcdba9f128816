package service

import (
	"context"

	"github.com/team-Roy/prototype-sub000/internal/database/models"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"go.uber.org/zap"
)

// RankingService builds lounge leaderboards.
type RankingService struct {
	scores      *models.ScoreModel
	communities *models.CommunityModel
	logger      *zap.Logger
}

// NewRanking creates a new ranking service.
func NewRanking(scores *models.ScoreModel, communities *models.CommunityModel, logger *zap.Logger) *RankingService {
	return &RankingService{
		scores:      scores,
		communities: communities,
		logger:      logger.Named("ranking_service"),
	}
}

// GetRanking returns one leaderboard page of a lounge.
//
// Entries carry their position in the ordering and, when a previous rank was snapshotted,
// how many places they moved since. The requester's own rank is competition style and
// independent of the page.
func (s *RankingService) GetRanking(ctx context.Context, query types.RankingQuery) (*types.RankingPage, error) {
	if !query.Sort.IsARankingSort() {
		return nil, types.ErrInvalidSort
	}

	if err := requireCommunity(ctx, s.communities, query.CommunityID); err != nil {
		return nil, err
	}

	query.Normalize()
	offset := query.Offset()

	scores, total, err := s.scores.GetRankingPage(ctx, query.CommunityID, query.Sort, offset, query.Limit)
	if err != nil {
		return nil, err
	}

	entries := make([]*types.RankingEntry, 0, len(scores))
	for i, score := range scores {
		rank := offset + i + 1

		entry := &types.RankingEntry{
			UserID:       score.UserID,
			Score:        score.SortScore(query.Sort),
			TotalScore:   score.TotalScore,
			MonthlyScore: score.MonthlyScore,
			Rank:         rank,
		}
		if score.PreviousRank != nil {
			change := *score.PreviousRank - rank
			entry.RankChange = &change
		}

		entries = append(entries, entry)
	}

	page := &types.RankingPage{
		CommunityID: query.CommunityID,
		Sort:        query.Sort,
		Page:        query.Page,
		Limit:       query.Limit,
		Total:       total,
		Entries:     entries,
	}

	if query.RequestingUserID != nil {
		page.MyRank, err = s.userRank(ctx, query, *query.RequestingUserID)
		if err != nil {
			return nil, err
		}
	}

	return page, nil
}

// userRank computes 1 + the number of members with a strictly greater score.
// Returns nil when the user has no score in the lounge.
func (s *RankingService) userRank(
	ctx context.Context, query types.RankingQuery, userID uint64,
) (*types.UserRank, error) {
	score, err := s.scores.GetScore(ctx, userID, query.CommunityID)
	if err != nil || score == nil {
		return nil, err
	}

	value := score.SortScore(query.Sort)

	higher, err := s.scores.CountHigherScores(ctx, query.CommunityID, query.Sort, value)
	if err != nil {
		return nil, err
	}

	return &types.UserRank{Rank: higher + 1, Score: value}, nil
}
