package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/bingeboard/internal/api/middleware"
	"github.com/d60-Lab/bingeboard/pkg/response"
)

type addCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// AddComment replies to a post
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param post_id path int true "post id"
// @Param request body addCommentRequest true "comment"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{post_id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	me := middleware.CurrentUser(c)
	id, err := h.postSvc.AddComment(c.Request.Context(), me, postID, req.Content)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if id == 0 {
		response.NotFound(c, "post not found")
		return
	}
	response.Created(c, gin.H{"comment_id": id})
}

// ListComments lists a post's comments, newest first
// @Summary List comments
// @Tags comments
// @Produce json
// @Param post_id path int true "post id"
// @Success 200 {object} response.Response
// @Router /api/v1/posts/{post_id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	list, err := h.postSvc.Comments(c.Request.Context(), postID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"list": list})
}

// DeleteComment removes the caller's own comment
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param comment_id path int true "comment id"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/comments/{comment_id} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	me := middleware.CurrentUser(c)
	removed, err := h.postSvc.DeleteComment(c.Request.Context(), me, commentID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !removed {
		response.Forbidden(c, "not the author")
		return
	}
	response.Success(c, nil)
}
