package handler

import (
	"github.com/d60-Lab/bingeboard/internal/repository"
	"github.com/d60-Lab/bingeboard/internal/service"
)

// Handler bundles the services the route handlers dispatch into.
type Handler struct {
	auth     *service.AuthService
	relSvc   service.RelationshipService
	postSvc  *service.PostService
	watchSvc *service.WatchService
	users    repository.UserRepository
	media    repository.MediaRepository
}

func New(
	auth *service.AuthService,
	relSvc service.RelationshipService,
	postSvc *service.PostService,
	watchSvc *service.WatchService,
	users repository.UserRepository,
	media repository.MediaRepository,
) *Handler {
	return &Handler{
		auth:     auth,
		relSvc:   relSvc,
		postSvc:  postSvc,
		watchSvc: watchSvc,
		users:    users,
		media:    media,
	}
}
