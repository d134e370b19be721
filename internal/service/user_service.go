package service

import (
	"context"
	"net/http"
	"time"

	"beltdash/backend/internal/models"
	"beltdash/backend/internal/repository"

	"gorm.io/gorm"
)

// UserResponse is the outward projection of a user.
type UserResponse struct {
	ID        uint              `json:"id" example:"1"`
	Username  string            `json:"username" example:"player_one"`
	Email     string            `json:"email" example:"player@example.com"`
	Status    models.UserStatus `json:"status" example:"Active"`
	Role      string            `json:"role" example:"player"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

func newUserResponse(user *models.User) *UserResponse {
	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}
	return &UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Status:    user.Status,
		Role:      roleName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// UserService implements CRUD operations on users.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a UserService.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetAllUsers returns every user with its role.
func (s *UserService) GetAllUsers(ctx context.Context) Response[[]*UserResponse] {
	uow := repository.NewUnitOfWork(s.db)
	defer uow.Close()

	users, err := uow.Users.GetAllUsersWithRoles(ctx)
	if err != nil {
		return ServerError[[]*UserResponse]("users: list", err)
	}

	responses := make([]*UserResponse, len(users))
	for i := range users {
		responses[i] = newUserResponse(&users[i])
	}
	return Ok(responses)
}

// GetUserByID returns one user with its role.
func (s *UserService) GetUserByID(ctx context.Context, id uint) Response[*UserResponse] {
	uow := repository.NewUnitOfWork(s.db)
	defer uow.Close()

	user, err := uow.Users.GetUserWithRole(ctx, id)
	if err != nil {
		return ServerError[*UserResponse]("users: get", err)
	}
	if user == nil {
		return Error[*UserResponse]("User not found.", http.StatusNotFound)
	}
	return Ok(newUserResponse(user))
}

// UpdateUser changes a user's username and email, rejecting values already
// owned by a different user.
func (s *UserService) UpdateUser(ctx context.Context, id uint, username, email string) Response[*UserResponse] {
	uow := repository.NewUnitOfWork(s.db)
	defer uow.Close()

	user, err := uow.Users.GetByID(ctx, id)
	if err != nil {
		return ServerError[*UserResponse]("users: update load", err)
	}
	if user == nil {
		return Error[*UserResponse]("User not found.", http.StatusNotFound)
	}

	if user.Email != email {
		existing, err := uow.Users.GetByEmail(ctx, email)
		if err != nil {
			return ServerError[*UserResponse]("users: update email check", err)
		}
		if existing != nil && existing.ID != id {
			return Error[*UserResponse]("Email is already in use.", http.StatusBadRequest)
		}
	}

	if user.Username != username {
		existing, err := uow.Users.GetByUsername(ctx, username)
		if err != nil {
			return ServerError[*UserResponse]("users: update username check", err)
		}
		if existing != nil && existing.ID != id {
			return Error[*UserResponse]("Username is already taken.", http.StatusBadRequest)
		}
	}

	user.Username = username
	user.Email = email

	uow.Users.Update(user)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return ServerError[*UserResponse]("users: update save", err)
	}

	return s.reload(ctx, uow, id, "users: update reload")
}

// UpdateUserStatus sets a user's status (Active or Banned).
func (s *UserService) UpdateUserStatus(ctx context.Context, id uint, status models.UserStatus) Response[*UserResponse] {
	uow := repository.NewUnitOfWork(s.db)
	defer uow.Close()

	user, err := uow.Users.GetByID(ctx, id)
	if err != nil {
		return ServerError[*UserResponse]("users: status load", err)
	}
	if user == nil {
		return Error[*UserResponse]("User not found.", http.StatusNotFound)
	}

	user.Status = status

	uow.Users.Update(user)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return ServerError[*UserResponse]("users: status save", err)
	}

	return s.reload(ctx, uow, id, "users: status reload")
}

// UpdateUserRole assigns a different role to a user.
func (s *UserService) UpdateUserRole(ctx context.Context, id, roleID uint) Response[*UserResponse] {
	uow := repository.NewUnitOfWork(s.db)
	defer uow.Close()

	user, err := uow.Users.GetByID(ctx, id)
	if err != nil {
		return ServerError[*UserResponse]("users: role load", err)
	}
	if user == nil {
		return Error[*UserResponse]("User not found.", http.StatusNotFound)
	}

	role, err := uow.Roles.GetByID(ctx, roleID)
	if err != nil {
		return ServerError[*UserResponse]("users: role lookup", err)
	}
	if role == nil {
		return Error[*UserResponse]("Role not found.", http.StatusNotFound)
	}

	user.RoleID = roleID

	uow.Users.Update(user)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return ServerError[*UserResponse]("users: role save", err)
	}

	return s.reload(ctx, uow, id, "users: role reload")
}

// DeleteUser removes a user; the user's scores go with it.
func (s *UserService) DeleteUser(ctx context.Context, id uint) Response[bool] {
	uow := repository.NewUnitOfWork(s.db)
	defer uow.Close()

	user, err := uow.Users.GetByID(ctx, id)
	if err != nil {
		return ServerError[bool]("users: delete load", err)
	}
	if user == nil {
		return Error[bool]("User not found.", http.StatusNotFound)
	}

	uow.Users.Delete(user)
	if _, err := uow.SaveChanges(ctx); err != nil {
		return ServerError[bool]("users: delete save", err)
	}

	return Ok(true)
}

// reload re-fetches a user with its role after a successful mutation so
// the projection reflects server-assigned state.
func (s *UserService) reload(ctx context.Context, uow *repository.UnitOfWork, id uint, op string) Response[*UserResponse] {
	updated, err := uow.Users.GetUserWithRole(ctx, id)
	if err != nil || updated == nil {
		return ServerError[*UserResponse](op, err)
	}
	return Ok(newUserResponse(updated))
}
