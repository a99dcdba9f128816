package database

import (
	"github.com/team-Roy/prototype-sub000/internal/database/models"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	target    *models.TargetModel
	vote      *models.VoteModel
	score     *models.ScoreModel
	badge     *models.BadgeModel
	quest     *models.QuestModel
	progress  *models.ProgressModel
	community *models.CommunityModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		target:    models.NewTarget(db, logger),
		vote:      models.NewVote(db, logger),
		score:     models.NewScore(db, logger),
		badge:     models.NewBadge(db, logger),
		quest:     models.NewQuest(db, logger),
		progress:  models.NewProgress(db, logger),
		community: models.NewCommunity(db, logger),
	}
}

// Target returns the post and comment model repository.
func (r *Repository) Target() *models.TargetModel {
	return r.target
}

// Vote returns the vote model repository.
func (r *Repository) Vote() *models.VoteModel {
	return r.vote
}

// Score returns the fan score model repository.
func (r *Repository) Score() *models.ScoreModel {
	return r.score
}

// Badge returns the fan badge model repository.
func (r *Repository) Badge() *models.BadgeModel {
	return r.badge
}

// Quest returns the quest model repository.
func (r *Repository) Quest() *models.QuestModel {
	return r.quest
}

// Progress returns the quest progress model repository.
func (r *Repository) Progress() *models.ProgressModel {
	return r.progress
}

// Community returns the community model repository.
func (r *Repository) Community() *models.CommunityModel {
	return r.community
}
