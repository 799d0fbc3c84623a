package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/user/domain"
	"github.com/minimarket/admin-api/pkg/auth"
)

// LoginUserCommand represents a login attempt
type LoginUserCommand struct {
	Email    string
	Password string
}

// LoginResult carries the issued token and the authenticated user
type LoginResult struct {
	Token string
	User  *domain.User
}

// LoginUserHandler handles user authentication
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login command
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	user, err := h.repo.FindByEmail(cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if !user.IsActive {
		return nil, fmt.Errorf("account is inactive")
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, fmt.Errorf("invalid credentials")
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{Token: token, User: user}, nil
}
