package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/bingeboard/internal/repository"
	"github.com/d60-Lab/bingeboard/internal/service"
	"github.com/d60-Lab/bingeboard/pkg/response"
)

type signupRequest struct {
	FirstName string `json:"first_name" binding:"required,max=40"`
	LastName  string `json:"last_name" binding:"required,max=40"`
	Username  string `json:"username" binding:"required,min=3,max=40"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup registers a new account
// @Summary Sign up
// @Tags auth
// @Accept json
// @Produce json
// @Param request body signupRequest true "account details"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/auth/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.auth.Register(c.Request.Context(), req.FirstName, req.LastName, req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"user_id": u.UserID, "username": u.UName})
}

// Login exchanges credentials for a bearer token
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "credentials"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"token": token})
}

// Logout revokes the presented token
// @Summary Log out
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/v1/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	auth := c.GetHeader("Authorization")
	if len(auth) > 7 {
		_ = h.auth.Logout(c.Request.Context(), auth[7:])
	}
	response.Success(c, nil)
}
