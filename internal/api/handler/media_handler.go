package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/bingeboard/pkg/response"
)

type createMediaRequest struct {
	Title string `json:"title" binding:"required,max=120"`
	Genre string `json:"genre" binding:"max=40"`
	Year  string `json:"year" binding:"max=40"`
	Type  string `json:"type" binding:"omitempty,mediatype"`
}

// CreateMedia registers a TV/movie title in the catalog
// @Summary Add a media item
// @Tags media
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createMediaRequest true "media item"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/media [post]
func (h *Handler) CreateMedia(c *gin.Context) {
	var req createMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.media.Create(c.Request.Context(), req.Title, req.Genre, req.Year, req.Type)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

// ListMedia lists the title catalog
// @Summary List media
// @Tags media
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/media [get]
func (h *Handler) ListMedia(c *gin.Context) {
	list, err := h.media.All(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"list": list})
}
