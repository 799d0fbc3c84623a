package command

import (
	"fmt"

	"github.com/minimarket/admin-api/internal/user/domain"
)

// DeactivateUserCommand represents the soft delete of a user
type DeactivateUserCommand struct {
	ID uint
}

// DeactivateUserHandler handles user deactivation
type DeactivateUserHandler struct {
	repo domain.UserRepository
}

// NewDeactivateUserHandler creates a new deactivate user handler
func NewDeactivateUserHandler(repo domain.UserRepository) *DeactivateUserHandler {
	return &DeactivateUserHandler{repo: repo}
}

// Handle executes the deactivate user command
func (h *DeactivateUserHandler) Handle(cmd DeactivateUserCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("invalid user id")
	}

	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return fmt.Errorf("user not found")
	}

	user.IsActive = false

	if err := h.repo.Update(user); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	return nil
}
