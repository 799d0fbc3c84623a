package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/user/domain"
	"github.com/minimarket/admin-api/internal/validate"
	"github.com/minimarket/admin-api/pkg/auth"
)

// CreateUserCommand represents the command to create a user
type CreateUserCommand struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// CreateUserHandler handles user creation
type CreateUserHandler struct {
	repo domain.UserRepository
}

// NewCreateUserHandler creates a new create user handler
func NewCreateUserHandler(repo domain.UserRepository) *CreateUserHandler {
	return &CreateUserHandler{repo: repo}
}

// Handle executes the create user command
func (h *CreateUserHandler) Handle(cmd CreateUserCommand) (*domain.User, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !validate.Email(cmd.Email) {
		return nil, fmt.Errorf("invalid email format")
	}
	if len(cmd.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}

	role := cmd.Role
	if role == "" {
		role = domain.RoleEmployee
	}
	if role != domain.RoleEmployee && role != domain.RoleAdmin {
		return nil, fmt.Errorf("invalid role")
	}

	if existing, err := h.repo.FindByEmail(cmd.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashed, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:     cmd.Name,
		Email:    cmd.Email,
		Password: hashed,
		Role:     role,
		IsActive: true,
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
