package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tablehost/gin-booking-api/internal/services"
)

// AuthController handles the login endpoint
type AuthController interface {
	// Login verifies a credential pair and returns the user summary
	Login(ctx *gin.Context)
}

type authController struct {
	service services.AuthService
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(service services.AuthService) AuthController {
	return &authController{service: service}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log a user in
// @Description Verify email/password and return the user summary plus a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/login [post]
func (c *authController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, token, err := c.service.Login(req.Email, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":  user.Summary(),
		"token": token,
	})
}
