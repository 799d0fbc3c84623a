package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/user/domain"
	"github.com/minimarket/admin-api/internal/validate"
	"github.com/minimarket/admin-api/pkg/auth"
)

// UpdateUserCommand represents a partial user update
type UpdateUserCommand struct {
	ID       uint
	Name     *string
	Email    *string
	Password *string
	Role     *string
	IsActive *bool
}

// UpdateUserHandler handles user updates
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle executes the update user command
func (h *UpdateUserHandler) Handle(cmd UpdateUserCommand) (*domain.User, error) {
	if cmd.ID == 0 {
		return nil, fmt.Errorf("invalid user id")
	}

	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}

	if cmd.Name != nil {
		if *cmd.Name == "" {
			return nil, fmt.Errorf("name is required")
		}
		user.Name = *cmd.Name
	}
	if cmd.Email != nil {
		if !validate.Email(*cmd.Email) {
			return nil, fmt.Errorf("invalid email format")
		}
		if existing, err := h.repo.FindByEmail(*cmd.Email); err == nil && existing != nil && existing.ID != user.ID {
			return nil, fmt.Errorf("email already registered")
		}
		user.Email = *cmd.Email
	}
	if cmd.Password != nil && *cmd.Password != "" {
		if len(*cmd.Password) < 6 {
			return nil, fmt.Errorf("password must be at least 6 characters")
		}
		hashed, err := auth.HashPassword(*cmd.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}
	if cmd.Role != nil {
		if *cmd.Role != domain.RoleEmployee && *cmd.Role != domain.RoleAdmin {
			return nil, fmt.Errorf("invalid role")
		}
		user.Role = *cmd.Role
	}
	if cmd.IsActive != nil {
		user.IsActive = *cmd.IsActive
	}

	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
