package repository

import (
	"context"

	"beltdash/backend/internal/models"

	"gorm.io/gorm"
)

// RoleRepository adds role-specific lookups on top of the generic CRUD set.
type RoleRepository struct {
	Repository[models.Role]
}

func newRoleRepository(db *gorm.DB, changes *changeSet) *RoleRepository {
	return &RoleRepository{Repository: newRepository[models.Role](db, changes)}
}

// GetByName finds a role by name, ignoring case.
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	return r.Find(ctx, "lower(name) = lower(?)", name)
}
