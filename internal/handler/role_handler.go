package handler

import (
	"beltdash/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RoleHandler exposes the role listing endpoint.
type RoleHandler struct {
	roles *service.RoleService
}

// NewRoleHandler creates a RoleHandler.
func NewRoleHandler(roles *service.RoleService) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// GetAllRoles godoc
// @Summary      List all roles
// @Description  Returns every role in the system. Admin only.
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  service.Response[[]service.RoleResponse]
// @Failure      401  {object}  service.Response[any]
// @Failure      403  {object}  service.Response[any]
// @Router       /roles [get]
func (h *RoleHandler) GetAllRoles(c *gin.Context) {
	resp := h.roles.GetAllRoles(c.Request.Context())
	c.JSON(resp.StatusCode, resp)
}
