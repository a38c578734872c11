package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/bingeboard/internal/api/middleware"
	"github.com/d60-Lab/bingeboard/pkg/response"
)

type watchRequest struct {
	Title string `json:"title" binding:"required,max=120"`
}

// One handler set serves all three watch relations; the route group
// passes the relation name through the gin context.
const watchStateKey = "watch_state"

func WatchState(state string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(watchStateKey, state)
		c.Next()
	}
}

func watchState(c *gin.Context) string { return c.GetString(watchStateKey) }

// AddWatch adds a title to the caller's watched/watching/watchlist set
// @Summary Add a title to a watch set
// @Tags watch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body watchRequest true "media title"
// @Success 200 {object} response.Response
// @Router /api/v1/watchlist [post]
func (h *Handler) AddWatch(c *gin.Context) {
	var req watchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	me := middleware.CurrentUser(c)
	added, err := h.watchSvc.Add(c.Request.Context(), watchState(c), me, req.Title)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"added": added})
}

// RemoveWatch removes a title from the caller's set; unknown titles no-op
// @Summary Remove a title from a watch set
// @Tags watch
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body watchRequest true "media title"
// @Success 200 {object} response.Response
// @Router /api/v1/watchlist [delete]
func (h *Handler) RemoveWatch(c *gin.Context) {
	var req watchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	me := middleware.CurrentUser(c)
	removed, err := h.watchSvc.Remove(c.Request.Context(), watchState(c), me, req.Title)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"removed": removed})
}

// ListWatch lists the titles in the caller's set
// @Summary List a watch set
// @Tags watch
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/v1/watchlist [get]
func (h *Handler) ListWatch(c *gin.Context) {
	me := middleware.CurrentUser(c)
	media, err := h.watchSvc.Media(c.Request.Context(), watchState(c), me)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	titles := make([]string, len(media))
	for i, m := range media {
		titles[i] = m.Title
	}
	response.Success(c, gin.H{"titles": titles, "media": media})
}
