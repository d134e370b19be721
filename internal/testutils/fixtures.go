package testutils

import (
	"fmt"
	"testing"
	"time"

	"beltdash/backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the plaintext behind every fixture user's hash.
const DefaultPassword = "Password123!"

// CreateTestUser creates a test user with a unique username and email.
func CreateTestUser(t *testing.T, db *gorm.DB, opts ...UserOption) *models.User {
	t.Helper()

	suffix := uuid.New().String()[:8]

	hash, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)

	now := time.Now().UTC()
	user := &models.User{
		BaseModel:    models.BaseModel{CreatedAt: now, UpdatedAt: now},
		Username:     fmt.Sprintf("test_%s", suffix),
		Email:        fmt.Sprintf("test_%s@example.com", suffix),
		PasswordHash: string(hash),
		Status:       models.StatusActive,
		RoleID:       1, // player
	}

	for _, opt := range opts {
		opt(user)
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// UserOption configures a test user.
type UserOption func(*models.User)

// WithUsername sets the username.
func WithUsername(username string) UserOption {
	return func(u *models.User) {
		u.Username = username
	}
}

// WithEmail sets the email.
func WithEmail(email string) UserOption {
	return func(u *models.User) {
		u.Email = email
	}
}

// WithStatus sets the account status.
func WithStatus(status models.UserStatus) UserOption {
	return func(u *models.User) {
		u.Status = status
	}
}

// WithRoleID sets the role.
func WithRoleID(roleID uint) UserOption {
	return func(u *models.User) {
		u.RoleID = roleID
	}
}

// WithPassword sets the password (will be hashed).
func WithPassword(plaintext string) UserOption {
	return func(u *models.User) {
		hash, _ := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.MinCost)
		u.PasswordHash = string(hash)
	}
}

// CreateTestScore records a score for a user.
func CreateTestScore(t *testing.T, db *gorm.DB, user *models.User, points int) *models.Score {
	t.Helper()

	now := time.Now().UTC()
	score := &models.Score{
		BaseModel: models.BaseModel{CreatedAt: now, UpdatedAt: now},
		UserID:    user.ID,
		Points:    points,
	}
	if err := db.Create(score).Error; err != nil {
		t.Fatalf("Failed to create test score: %v", err)
	}
	return score
}
