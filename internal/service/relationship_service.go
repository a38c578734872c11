package service

import (
	"context"
	"errors"

	"github.com/d60-Lab/bingeboard/internal/model"
	"github.com/d60-Lab/bingeboard/internal/repository"
)

var (
	ErrFollowSelf = errors.New("cannot follow self")
)

// RelationshipService 关系链服务
type RelationshipService interface {
	Follow(ctx context.Context, fromUserID, toUserID uint) (bool, error)
	Unfollow(ctx context.Context, fromUserID, toUserID uint) (bool, error)
	IsFollowing(ctx context.Context, fromUserID, toUserID uint) (bool, error)
	Followers(ctx context.Context, userID uint) ([]model.UserSummary, error)
	Following(ctx context.Context, userID uint) ([]model.UserSummary, error)
	Discover(ctx context.Context, userID uint) ([]model.UserSummary, error)
	Search(ctx context.Context, term string, userID uint) ([]model.UserSummary, error)
}

type relationshipService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewRelationshipService(followRepo repository.FollowRepository, userRepo repository.UserRepository) RelationshipService {
	return &relationshipService{followRepo: followRepo, userRepo: userRepo}
}

func (s *relationshipService) Follow(ctx context.Context, fromUserID, toUserID uint) (bool, error) {
	if fromUserID == toUserID {
		return false, ErrFollowSelf
	}
	return s.followRepo.Follow(ctx, fromUserID, toUserID)
}

func (s *relationshipService) Unfollow(ctx context.Context, fromUserID, toUserID uint) (bool, error) {
	return s.followRepo.Unfollow(ctx, fromUserID, toUserID)
}

func (s *relationshipService) IsFollowing(ctx context.Context, fromUserID, toUserID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, fromUserID, toUserID)
}

func (s *relationshipService) Followers(ctx context.Context, userID uint) ([]model.UserSummary, error) {
	return s.followRepo.Followers(ctx, userID)
}

func (s *relationshipService) Following(ctx context.Context, userID uint) ([]model.UserSummary, error) {
	return s.followRepo.Following(ctx, userID)
}

func (s *relationshipService) Discover(ctx context.Context, userID uint) ([]model.UserSummary, error) {
	return s.userRepo.Others(ctx, userID)
}

func (s *relationshipService) Search(ctx context.Context, term string, userID uint) ([]model.UserSummary, error) {
	return s.userRepo.Search(ctx, term, userID)
}
