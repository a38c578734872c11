package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/bingeboard/internal/api/middleware"
	"github.com/d60-Lab/bingeboard/internal/service"
	"github.com/d60-Lab/bingeboard/pkg/response"
)

type createPostRequest struct {
	MediaID uint   `json:"media_id" binding:"required"`
	Title   string `json:"title" binding:"required,max=120"`
	Content string `json:"content" binding:"required"`
	Spoiler bool   `json:"spoiler"`
	Rating  *int   `json:"rating" binding:"omitempty,min=1,max=10"`
}

type editPostRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreatePost publishes a post about a media item
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createPostRequest true "post"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	me := middleware.CurrentUser(c)
	id, err := h.postSvc.Create(c.Request.Context(), me, req.MediaID, req.Title, req.Content, req.Spoiler, req.Rating)
	if err != nil {
		if errors.Is(err, service.ErrUnknownMedia) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"post_id": id})
}

// GetPost returns one post with author and media title
// @Summary Get a post
// @Tags posts
// @Produce json
// @Param post_id path int true "post id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{post_id} [get]
func (h *Handler) GetPost(c *gin.Context) {
	id, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	post, err := h.postSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if post == nil {
		response.NotFound(c, "post not found")
		return
	}
	response.Success(c, post)
}

// EditPost rewrites the content of the caller's own post
// @Summary Edit a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post_id path int true "post id"
// @Param request body editPostRequest true "new content"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/posts/{post_id} [put]
func (h *Handler) EditPost(c *gin.Context) {
	id, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	var req editPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	me := middleware.CurrentUser(c)
	updated, err := h.postSvc.Edit(c.Request.Context(), me, id, req.Content)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !updated {
		response.Forbidden(c, "not the author")
		return
	}
	response.Success(c, nil)
}

// DeletePost removes the caller's own post and its comments
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param post_id path int true "post id"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/posts/{post_id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	me := middleware.CurrentUser(c)
	deleted, err := h.postSvc.Delete(c.Request.Context(), me, id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.Forbidden(c, "not the author")
		return
	}
	response.Success(c, nil)
}

// Feed returns the caller's personalized feed
// @Summary My feed
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/v1/feed [get]
func (h *Handler) Feed(c *gin.Context) {
	me := middleware.CurrentUser(c)
	items, err := h.postSvc.Feed(c.Request.Context(), me)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"list": items})
}
