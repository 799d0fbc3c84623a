package client

import (
	"context"
	"fmt"
	"net/http"

	userdomain "github.com/minimarket/admin-api/internal/user/domain"
)

// LoginResponse is the payload returned by POST /auth/login.
type LoginResponse struct {
	OK      bool             `json:"ok"`
	Status  int              `json:"status"`
	Message string           `json:"message"`
	Token   string           `json:"token"`
	User    *userdomain.User `json:"user"`
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}

	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	if !resp.OK || resp.Token == "" {
		return nil, fmt.Errorf("login rejected: %s", resp.Message)
	}

	c.SetToken(resp.Token)
	return &resp, nil
}
