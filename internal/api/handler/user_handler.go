package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/bingeboard/internal/api/middleware"
	"github.com/d60-Lab/bingeboard/pkg/response"
)

// ListUsers lists every account, ordered by username
// @Summary User directory
// @Tags users
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	list, err := h.users.All(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"list": list})
}

// Discover suggests users the caller does not follow yet
// @Summary Discover users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/v1/discover [get]
func (h *Handler) Discover(c *gin.Context) {
	me := middleware.CurrentUser(c)
	list, err := h.relSvc.Discover(c.Request.Context(), me)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"list": list})
}

// SearchUsers matches q against username and name fields
// @Summary Search users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param q query string true "search term"
// @Success 200 {object} response.Response
// @Router /api/v1/search [get]
func (h *Handler) SearchUsers(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		response.BadRequest(c, "missing query parameter q")
		return
	}
	me := middleware.CurrentUser(c)
	list, err := h.relSvc.Search(c.Request.Context(), term, me)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"list": list})
}
