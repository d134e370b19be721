package repository

import (
	"context"
	"errors"

	"beltdash/backend/internal/models"

	"gorm.io/gorm"
)

// UserRepository adds user-specific lookups on top of the generic CRUD set.
type UserRepository struct {
	Repository[models.User]
}

func newUserRepository(db *gorm.DB, changes *changeSet) *UserRepository {
	return &UserRepository{Repository: newRepository[models.User](db, changes)}
}

// GetByUsername finds a user by username, ignoring case.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.Find(ctx, "lower(username) = lower(?)", username)
}

// GetByEmail finds a user by email address, ignoring case.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.Find(ctx, "lower(email) = lower(?)", email)
}

// GetUserWithRole returns a user with the Role relation eager-loaded, or
// nil if the user does not exist.
func (r *UserRepository) GetUserWithRole(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("Role").First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAllUsersWithRoles returns every user with the Role relation
// eager-loaded.
func (r *UserRepository) GetAllUsersWithRoles(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Preload("Role").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
