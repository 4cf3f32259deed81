package ApiClient

import (
	"context"

	"Tractor/Models"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  Models.User `json:"user"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.do(ctx, "POST", "/auth/login", LoginRequest{Email: email, Password: password}, &resp)
	return resp, err
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (Models.User, error) {
	var user Models.User
	err := c.do(ctx, "POST", "/auth/register", req, &user)
	return user, err
}

// Me returns the profile behind the current token.
func (c *Client) Me(ctx context.Context) (Models.User, error) {
	var user Models.User
	err := c.do(ctx, "GET", "/auth/me", nil, &user)
	return user, err
}
