package service

import (
	"context"

	"github.com/team-Roy/prototype-sub000/internal/database/models"
	"github.com/team-Roy/prototype-sub000/internal/database/types"
)

// requireCommunity returns ErrCommunityNotFound unless the lounge exists.
// It reads outside any transaction, so call it before opening one.
func requireCommunity(ctx context.Context, communities *models.CommunityModel, id uint64) error {
	exists, err := communities.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return types.ErrCommunityNotFound
	}
	return nil
}

// requireOptionalCommunity checks the lounge when one is given.
func requireOptionalCommunity(ctx context.Context, communities *models.CommunityModel, id *uint64) error {
	if id == nil {
		return nil
	}
	return requireCommunity(ctx, communities, *id)
}
