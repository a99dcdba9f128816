package service

import (
	"context"
	"time"

	"github.com/team-Roy/prototype-sub000/internal/database/dbretry"
	"github.com/team-Roy/prototype-sub000/internal/database/models"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
	"github.com/team-Roy/prototype-sub000/internal/database/types/enum"
	"github.com/team-Roy/prototype-sub000/internal/setup/telemetry"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Score thresholds of the automatically awarded badges.
const (
	ActiveCommenterThreshold = 200
	ContentCreatorThreshold  = 500
)

// threshold is a badge granted once a category subtotal reaches a minimum.
type threshold struct {
	badge    enum.BadgeType
	category enum.ScoreCategory
	minimum  int64
}

var thresholds = []threshold{
	{badge: enum.BadgeTypeActiveCommenter, category: enum.ScoreCategoryComment, minimum: ActiveCommenterThreshold},
	{badge: enum.BadgeTypeContentCreator, category: enum.ScoreCategoryPost, minimum: ContentCreatorThreshold},
}

// BadgeService handles badge awarding.
type BadgeService struct {
	db          *bun.DB
	model       *models.BadgeModel
	scores      *models.ScoreModel
	communities *models.CommunityModel
	metrics     *telemetry.Metrics
	logger      *zap.Logger
}

// NewBadge creates a new badge service.
func NewBadge(
	db *bun.DB,
	model *models.BadgeModel,
	scores *models.ScoreModel,
	communities *models.CommunityModel,
	metrics *telemetry.Metrics,
	logger *zap.Logger,
) *BadgeService {
	return &BadgeService{
		db:          db,
		model:       model,
		scores:      scores,
		communities: communities,
		metrics:     metrics,
		logger:      logger.Named("badge_service"),
	}
}

// AwardBadge grants a badge to a user in a lounge, or globally when communityID is nil.
// Re-awarding a held badge only replaces its expiry.
func (s *BadgeService) AwardBadge(
	ctx context.Context, userID uint64, communityID *uint64, badgeType enum.BadgeType, expiresAt *time.Time,
) (*types.FanBadge, error) {
	if !badgeType.IsABadgeType() {
		return nil, types.ErrInvalidBadge
	}

	if err := requireOptionalCommunity(ctx, s.communities, communityID); err != nil {
		return nil, err
	}

	var badge *types.FanBadge

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		var err error
		badge, err = s.AwardBadgeWithTx(ctx, tx, userID, types.ScopeID(communityID), badgeType, expiresAt)
		return err
	})
	if err != nil {
		return nil, err
	}

	return badge, nil
}

// AwardBadgeWithTx upserts a badge using the provided transaction and returns the stored row.
// Only a badge the user did not hold yet counts as awarded.
func (s *BadgeService) AwardBadgeWithTx(
	ctx context.Context, tx bun.IDB, userID, scope uint64, badgeType enum.BadgeType, expiresAt *time.Time,
) (*types.FanBadge, error) {
	info := badgeType.Info()

	var expiry *time.Time
	if expiresAt != nil {
		utc := expiresAt.UTC()
		expiry = &utc
	}

	badge := &types.FanBadge{
		UserID:      userID,
		CommunityID: scope,
		BadgeType:   badgeType,
		Name:        info.Name,
		Description: info.Description,
		AwardedAt:   time.Now().UTC(),
		ExpiresAt:   expiry,
	}

	held, err := s.model.GetBadgeWithTx(ctx, tx, badge)
	if err != nil {
		return nil, err
	}

	if err := s.model.UpsertBadgeWithTx(ctx, tx, badge); err != nil {
		return nil, err
	}

	stored, err := s.model.GetBadgeWithTx(ctx, tx, badge)
	if err != nil {
		return nil, err
	}

	if held != nil {
		s.logger.Debug("Renewed badge",
			zap.Uint64("userID", userID),
			zap.Uint64("communityID", scope),
			zap.String("badge", badgeType.String()))
		return stored, nil
	}

	s.metrics.BadgeAwarded(badgeType.String())

	s.logger.Debug("Awarded badge",
		zap.Uint64("userID", userID),
		zap.Uint64("communityID", scope),
		zap.String("badge", badgeType.String()))

	return stored, nil
}

// CheckThresholdsWithTx awards the permanent lounge badges whose thresholds the score has reached.
func (s *BadgeService) CheckThresholdsWithTx(ctx context.Context, tx bun.IDB, score *types.FanScore) error {
	for _, t := range thresholds {
		if score.CategoryScore(t.category) < t.minimum {
			continue
		}

		if _, err := s.AwardBadgeWithTx(ctx, tx, score.UserID, score.CommunityID, t.badge, nil); err != nil {
			return err
		}
	}

	return nil
}

// AwardTopFanBadge grants TOP_FAN for one month to the lounge member with the highest monthly score.
// Ties go to the lowest user id. Nothing is awarded when the lounge has no positive monthly score.
// It must run before the monthly reset.
func (s *BadgeService) AwardTopFanBadge(ctx context.Context, communityID uint64) (*types.FanBadge, error) {
	if err := requireCommunity(ctx, s.communities, communityID); err != nil {
		return nil, err
	}

	var badge *types.FanBadge

	err := dbretry.Transaction(ctx, s.db, func(ctx context.Context, tx bun.Tx) error {
		top, err := s.scores.GetTopMonthlyScoreWithTx(ctx, tx, communityID)
		if err != nil {
			return err
		}

		if top == nil || top.MonthlyScore <= 0 {
			return nil
		}

		expiresAt := time.Now().UTC().AddDate(0, 1, 0)

		badge, err = s.AwardBadgeWithTx(ctx, tx, top.UserID, communityID, enum.BadgeTypeTopFan, &expiresAt)
		return err
	})
	if err != nil {
		return nil, err
	}

	if badge != nil {
		s.logger.Info("Awarded top fan badge",
			zap.Uint64("communityID", communityID),
			zap.Uint64("userID", badge.UserID))
	}

	return badge, nil
}

// GetUserBadges returns a user's unexpired badges, newest first.
// With a community set only that lounge's badges and global badges are returned.
func (s *BadgeService) GetUserBadges(
	ctx context.Context, userID uint64, communityID *uint64,
) ([]*types.FanBadge, error) {
	badges, err := s.model.GetBadges(ctx, userID, communityID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	active := make([]*types.FanBadge, 0, len(badges))
	for _, badge := range badges {
		if badge.IsActiveAt(now) {
			active = append(active, badge)
		}
	}

	return active, nil
}
