package service

import (
	"context"
	"time"

	"beltdash/backend/internal/repository"

	"gorm.io/gorm"
)

// RoleResponse is the outward projection of a role.
type RoleResponse struct {
	ID        uint      `json:"id" example:"1"`
	Name      string    `json:"name" example:"player"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoleService lists the roles available in the system.
type RoleService struct {
	db *gorm.DB
}

// NewRoleService creates a RoleService.
func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

// GetAllRoles returns every role.
func (s *RoleService) GetAllRoles(ctx context.Context) Response[[]RoleResponse] {
	uow := repository.NewUnitOfWork(s.db)
	defer uow.Close()

	roles, err := uow.Roles.GetAll(ctx)
	if err != nil {
		return ServerError[[]RoleResponse]("roles: list", err)
	}

	responses := make([]RoleResponse, len(roles))
	for i, role := range roles {
		responses[i] = RoleResponse{
			ID:        role.ID,
			Name:      role.Name,
			CreatedAt: role.CreatedAt,
			UpdatedAt: role.UpdatedAt,
		}
	}
	return Ok(responses)
}
