package handler

import (
	"net/http"
	"strconv"

	"beltdash/backend/internal/models"
	"beltdash/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateUserInput defines the structure for profile updates.
type UpdateUserInput struct {
	Username string `json:"username" binding:"required,min=3,max=25" example:"player_one"`
	Email    string `json:"email" binding:"required,email" example:"player@example.com"`
}

// UpdateUserStatusInput defines the structure for status changes.
type UpdateUserStatusInput struct {
	Status models.UserStatus `json:"status" binding:"required,oneof=Active Banned" example:"Banned"`
}

// UpdateUserRoleInput defines the structure for role changes.
type UpdateUserRoleInput struct {
	RoleID uint `json:"roleId" binding:"required" example:"2"`
}

// UserHandler exposes the user management endpoints.
type UserHandler struct {
	users  *service.UserService
	scores *service.ScoreService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users *service.UserService, scores *service.ScoreService) *UserHandler {
	return &UserHandler{users: users, scores: scores}
}

// GetAllUsers godoc
// @Summary      List all users
// @Description  Returns every user with their role. Admin only.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.Response[[]service.UserResponse]
// @Failure      401  {object}  service.Response[any]
// @Failure      403  {object}  service.Response[any]
// @Router       /users [get]
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	resp := h.users.GetAllUsers(c.Request.Context())
	c.JSON(resp.StatusCode, resp)
}

// GetUserByID godoc
// @Summary      Get user by ID
// @Description  Returns one user with their role.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  service.Response[service.UserResponse]
// @Failure      400  {object}  service.Response[any]
// @Failure      401  {object}  service.Response[any]
// @Failure      404  {object}  service.Response[any]
// @Router       /users/{id} [get]
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	resp := h.users.GetUserByID(c.Request.Context(), id)
	c.JSON(resp.StatusCode, resp)
}

// UpdateUser godoc
// @Summary      Update a user's profile
// @Description  Changes a user's username and email. Callers may update their own profile; admins may update anyone's.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "User ID"
// @Param        input body      UpdateUserInput  true  "Updated profile"
// @Success      200  {object}  service.Response[service.UserResponse]
// @Failure      400  {object}  service.Response[any]
// @Failure      401  {object}  service.Response[any]
// @Failure      403  {object}  service.Response[any]
// @Failure      404  {object}  service.Response[any]
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, service.Error[any](err.Error(), http.StatusBadRequest))
		return
	}

	resp := h.users.UpdateUser(c.Request.Context(), id, input.Username, input.Email)
	c.JSON(resp.StatusCode, resp)
}

// UpdateUserStatus godoc
// @Summary      Update a user's status
// @Description  Sets a user's status to Active or Banned. Admin only.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "User ID"
// @Param        input body      UpdateUserStatusInput  true  "New status"
// @Success      200  {object}  service.Response[service.UserResponse]
// @Failure      400  {object}  service.Response[any]
// @Failure      401  {object}  service.Response[any]
// @Failure      403  {object}  service.Response[any]
// @Failure      404  {object}  service.Response[any]
// @Router       /users/{id}/status [patch]
func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	var input UpdateUserStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, service.Error[any](err.Error(), http.StatusBadRequest))
		return
	}

	resp := h.users.UpdateUserStatus(c.Request.Context(), id, input.Status)
	c.JSON(resp.StatusCode, resp)
}

// UpdateUserRole godoc
// @Summary      Update a user's role
// @Description  Assigns a different role to a user. Admin only.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "User ID"
// @Param        input body      UpdateUserRoleInput  true  "New role"
// @Success      200  {object}  service.Response[service.UserResponse]
// @Failure      400  {object}  service.Response[any]
// @Failure      401  {object}  service.Response[any]
// @Failure      403  {object}  service.Response[any]
// @Failure      404  {object}  service.Response[any]
// @Router       /users/{id}/role [patch]
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	var input UpdateUserRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, service.Error[any](err.Error(), http.StatusBadRequest))
		return
	}

	resp := h.users.UpdateUserRole(c.Request.Context(), id, input.RoleID)
	c.JSON(resp.StatusCode, resp)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Removes a user and all their scores. Admin only.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  service.Response[bool]
// @Failure      400  {object}  service.Response[any]
// @Failure      401  {object}  service.Response[any]
// @Failure      403  {object}  service.Response[any]
// @Failure      404  {object}  service.Response[any]
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	resp := h.users.DeleteUser(c.Request.Context(), id)
	c.JSON(resp.StatusCode, resp)
}

// GetUserScores godoc
// @Summary      List a user's scores
// @Description  Returns all scores of one user, highest first. Callers may view their own scores; admins may view anyone's.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  service.Response[[]service.ScoreResponse]
// @Failure      400  {object}  service.Response[any]
// @Failure      401  {object}  service.Response[any]
// @Failure      403  {object}  service.Response[any]
// @Failure      404  {object}  service.Response[any]
// @Router       /users/{id}/scores [get]
func (h *UserHandler) GetUserScores(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	resp := h.scores.GetScoresByUserID(c.Request.Context(), id)
	c.JSON(resp.StatusCode, resp)
}

// userIDParam parses the :id path parameter, responding with 400 on
// malformed input.
func userIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, service.Error[any]("Invalid user ID.", http.StatusBadRequest))
		return 0, false
	}
	return uint(id), true
}
