package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bmaBack/internal/models"
)

// IdentityClient verifies credentials against the external identity service
// that owns the user directory.
type IdentityClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewIdentityClient(baseURL string) *IdentityClient {
	return &IdentityClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type identityLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type identityLoginResponse struct {
	Email  string `json:"email"`
	RoleID string `json:"roleId"`
}

func (c *IdentityClient) Login(ctx context.Context, email, password string) (models.User, error) {
	body, err := json.Marshal(identityLoginRequest{Email: email, Password: password})
	if err != nil {
		return models.User{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return models.User{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.User{}, fmt.Errorf("identity: login request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return models.User{}, models.ErrInvalidCredentials
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.User{}, fmt.Errorf("identity: unexpected status %d: %s", resp.StatusCode, msg)
	}

	var payload identityLoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.User{}, fmt.Errorf("identity: decoding login response: %w", err)
	}

	return models.User{Email: payload.Email, RoleID: payload.RoleID}, nil
}
