package handler

import (
	"net/http"

	"beltdash/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Username        string `json:"username" binding:"required,min=3,max=25" example:"player_one"`
	Email           string `json:"email" binding:"required,email" example:"player@example.com"`
	Password        string `json:"password" binding:"required,min=8" example:"Secret123!"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password" example:"Secret123!"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email" example:"player@example.com"`
	Password string `json:"password" binding:"required" example:"Secret123!"`
}

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a new user with the default player role and returns an authentication token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  service.Response[service.AuthResponse]
// @Failure      400  {object}  service.Response[service.AuthResponse]
// @Failure      500  {object}  service.Response[service.AuthResponse]
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, service.Error[any](err.Error(), http.StatusBadRequest))
		return
	}

	resp := h.auth.Register(c.Request.Context(), input.Username, input.Email, input.Password)
	c.JSON(resp.StatusCode, resp)
}

// Login godoc
// @Summary      Log in a user
// @Description  Authenticates a user with email and password, and returns a new token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  service.Response[service.AuthResponse]
// @Failure      400  {object}  service.Response[service.AuthResponse]
// @Failure      401  {object}  service.Response[service.AuthResponse]
// @Failure      403  {object}  service.Response[service.AuthResponse]
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, service.Error[any](err.Error(), http.StatusBadRequest))
		return
	}

	resp := h.auth.Login(c.Request.Context(), input.Email, input.Password)
	c.JSON(resp.StatusCode, resp)
}
