package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/bingeboard/internal/api/middleware"
	"github.com/d60-Lab/bingeboard/internal/service"
	"github.com/d60-Lab/bingeboard/pkg/response"
)

type followRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// Follow creates a follow edge from the caller to the target user
// @Summary Follow a user
// @Tags relations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body followRequest true "target user"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/follows [post]
func (h *Handler) Follow(c *gin.Context) {
	var req followRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	me := middleware.CurrentUser(c)
	created, err := h.relSvc.Follow(c.Request.Context(), me, req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrFollowSelf) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"created": created})
}

// Unfollow removes the follow edge to the target user
// @Summary Unfollow a user
// @Tags relations
// @Produce json
// @Security BearerAuth
// @Param user_id path int true "target user id"
// @Success 200 {object} response.Response
// @Router /api/v1/follows/{user_id} [delete]
func (h *Handler) Unfollow(c *gin.Context) {
	target, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	me := middleware.CurrentUser(c)
	removed, err := h.relSvc.Unfollow(c.Request.Context(), me, target)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"removed": removed})
}

// ListFollowers lists the users following user_id
// @Summary List followers
// @Tags relations
// @Produce json
// @Param user_id path int true "user id"
// @Success 200 {object} response.Response
// @Router /api/v1/users/{user_id}/followers [get]
func (h *Handler) ListFollowers(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	list, err := h.relSvc.Followers(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"list": list})
}

// ListFollowing lists the users user_id follows
// @Summary List following
// @Tags relations
// @Produce json
// @Param user_id path int true "user id"
// @Success 200 {object} response.Response
// @Router /api/v1/users/{user_id}/following [get]
func (h *Handler) ListFollowing(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	list, err := h.relSvc.Following(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"list": list})
}
