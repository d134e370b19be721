package service

import (
	"context"
	"net/http"

	"beltdash/backend/internal/models"
	"beltdash/backend/internal/repository"
	"beltdash/backend/pkg/jwt"
	"beltdash/backend/pkg/password"

	"gorm.io/gorm"
)

// AuthResponse carries the authenticated identity and its bearer token.
type AuthResponse struct {
	UserID   uint   `json:"userId" example:"1"`
	Username string `json:"username" example:"player_one"`
	Email    string `json:"email" example:"player@example.com"`
	Role     string `json:"role" example:"player"`
	Token    string `json:"token"`
}

// AuthService handles user registration and login.
type AuthService struct {
	db     *gorm.DB
	tokens *jwt.Issuer
}

// NewAuthService creates an AuthService issuing tokens with the given issuer.
func NewAuthService(db *gorm.DB, tokens *jwt.Issuer) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

// Register creates a new user with the default "player" role, persists it
// and returns its identity together with a fresh token.
func (s *AuthService) Register(ctx context.Context, username, email, plaintext string) Response[*AuthResponse] {
	uow := repository.NewUnitOfWork(s.db)
	defer uow.Close()

	existingByEmail, err := uow.Users.GetByEmail(ctx, email)
	if err != nil {
		return ServerError[*AuthResponse]("register: lookup email", err)
	}
	if existingByEmail != nil {
		return Error[*AuthResponse]("Email is already registered.", http.StatusBadRequest)
	}

	existingByUsername, err := uow.Users.GetByUsername(ctx, username)
	if err != nil {
		return ServerError[*AuthResponse]("register: lookup username", err)
	}
	if existingByUsername != nil {
		return Error[*AuthResponse]("Username is already taken.", http.StatusBadRequest)
	}

	playerRole, err := uow.Roles.GetByName(ctx, models.RolePlayer)
	if err != nil {
		return ServerError[*AuthResponse]("register: lookup player role", err)
	}
	if playerRole == nil {
		// Seeding failed or was skipped; this is a configuration error.
		return Error[*AuthResponse]("Default role not found.", http.StatusInternalServerError)
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		return ServerError[*AuthResponse]("register: hash password", err)
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Status:       models.StatusActive,
		RoleID:       playerRole.ID,
	}

	uow.Users.Add(&user)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return ServerError[*AuthResponse]("register: save user", err)
	}

	token, err := s.tokens.Issue(&user, playerRole.Name)
	if err != nil {
		return ServerError[*AuthResponse]("register: issue token", err)
	}

	return Created(&AuthResponse{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     playerRole.Name,
		Token:    token,
	})
}

// Login authenticates a user by email and password. Unknown email and
// wrong password yield the identical error so a caller cannot tell which
// part was wrong.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) Response[*AuthResponse] {
	uow := repository.NewUnitOfWork(s.db)
	defer uow.Close()

	user, err := uow.Users.GetByEmail(ctx, email)
	if err != nil {
		return ServerError[*AuthResponse]("login: lookup email", err)
	}
	if user == nil {
		return Error[*AuthResponse]("Invalid email or password.", http.StatusUnauthorized)
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return Error[*AuthResponse]("Invalid email or password.", http.StatusUnauthorized)
	}

	if user.Status == models.StatusBanned {
		return Error[*AuthResponse]("Your account has been banned.", http.StatusForbidden)
	}

	userWithRole, err := uow.Users.GetUserWithRole(ctx, user.ID)
	if err != nil {
		return ServerError[*AuthResponse]("login: load role", err)
	}
	if userWithRole == nil || userWithRole.Role == nil {
		return Error[*AuthResponse]("User role not found.", http.StatusInternalServerError)
	}

	token, err := s.tokens.Issue(user, userWithRole.Role.Name)
	if err != nil {
		return ServerError[*AuthResponse]("login: issue token", err)
	}

	return Ok(&AuthResponse{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     userWithRole.Role.Name,
		Token:    token,
	})
}
