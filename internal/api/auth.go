package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nvoloshin/prepterm/internal/model"
)

type credentialsRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login exchanges credentials for a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (model.TokenPair, error) {
	req := credentialsRequest{Email: email, Password: password}
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return model.TokenPair{}, fmt.Errorf("login failed: %w", err)
	}
	return model.TokenPair{Access: resp.AccessToken, Refresh: resp.RefreshToken}, nil
}

// Register creates an account and returns the initial token pair.
func (c *Client) Register(ctx context.Context, name, email, password string) (model.TokenPair, error) {
	req := credentialsRequest{Name: name, Email: email, Password: password}
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return model.TokenPair{}, fmt.Errorf("registration failed: %w", err)
	}
	return model.TokenPair{Access: resp.AccessToken, Refresh: resp.RefreshToken}, nil
}

const refreshPath = "/api/auth/refresh"

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Refresh exchanges a refresh token for a new token pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	req := refreshRequest{RefreshToken: refreshToken}
	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, refreshPath, req, &resp); err != nil {
		return model.TokenPair{}, fmt.Errorf("token refresh failed: %w", err)
	}
	return model.TokenPair{Access: resp.AccessToken, Refresh: resp.RefreshToken}, nil
}
