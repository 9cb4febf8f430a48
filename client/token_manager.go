package client

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoCredential means the caller has no usable credential and must go
// through a fresh sign-in.
var ErrNoCredential = errors.New("no valid credential")

// TokenManager owns the credential pair lifecycle: it validates the
// access token against the identity probe, refreshes it at most once per
// lookup, and tears the pair down when the refresh token is no longer
// honored.
type TokenManager struct {
	client *Client
	store  CredentialStore
}

func NewTokenManager(client *Client, store CredentialStore) *TokenManager {
	return &TokenManager{client: client, store: store}
}

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// GetValidAccessToken returns an access token the backend currently
// accepts. With no stored token it fails fast without touching the
// network. Otherwise it probes the identity endpoint: a 200 validates
// the stored token as-is, a 401 triggers exactly one refresh attempt,
// and any other failure is treated as having no credential.
func (m *TokenManager) GetValidAccessToken(ctx context.Context) (string, error) {
	creds, err := m.store.Get()
	if err != nil {
		return "", fmt.Errorf("read credentials: %w", err)
	}
	if creds == nil || creds.AccessToken == "" {
		return "", ErrNoCredential
	}

	var me User
	err = m.client.get(ctx, "/api/v1/auth/me", creds.AccessToken, &me)
	if err == nil {
		return creds.AccessToken, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == 401 {
		return m.RefreshAccessToken(ctx)
	}
	return "", ErrNoCredential
}

// RefreshAccessToken exchanges the stored refresh token for a new pair.
// The new pair replaces the old one atomically; a rejected refresh
// clears everything so the next lookup fails fast.
func (m *TokenManager) RefreshAccessToken(ctx context.Context) (string, error) {
	creds, err := m.store.Get()
	if err != nil {
		return "", fmt.Errorf("read credentials: %w", err)
	}
	if creds == nil || creds.RefreshToken == "" {
		return "", ErrNoCredential
	}

	var pair tokenPair
	err = m.client.post(ctx, "/api/v1/auth/refresh", "", map[string]string{
		"refreshToken": creds.RefreshToken,
	}, &pair)
	if err != nil {
		if clearErr := m.store.Clear(); clearErr != nil {
			return "", fmt.Errorf("clear credentials after failed refresh: %w", clearErr)
		}
		return "", ErrNoCredential
	}

	if err := m.store.Set(&Credentials{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         pair.User,
	}); err != nil {
		return "", fmt.Errorf("store refreshed credentials: %w", err)
	}
	return pair.AccessToken, nil
}

// ClearAuthData drops the stored pair.
func (m *TokenManager) ClearAuthData() error {
	return m.store.Clear()
}

// SignIn authenticates with email/password and seeds the pair.
func (m *TokenManager) SignIn(ctx context.Context, email, password string) (*User, error) {
	return m.authenticate(ctx, "/api/v1/auth/signin", map[string]string{
		"email":    email,
		"password": password,
	})
}

// SignUp registers a new account and seeds the pair.
func (m *TokenManager) SignUp(ctx context.Context, email, password, username string) (*User, error) {
	return m.authenticate(ctx, "/api/v1/auth/signup", map[string]string{
		"email":    email,
		"password": password,
		"username": username,
	})
}

func (m *TokenManager) authenticate(ctx context.Context, path string, body map[string]string) (*User, error) {
	var pair tokenPair
	if err := m.client.post(ctx, path, "", body, &pair); err != nil {
		return nil, err
	}
	if err := m.store.Set(&Credentials{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         pair.User,
	}); err != nil {
		return nil, fmt.Errorf("store credentials: %w", err)
	}
	return pair.User, nil
}

// Logout revokes the refresh token server-side (best effort) and always
// clears the local pair.
func (m *TokenManager) Logout(ctx context.Context) error {
	creds, err := m.store.Get()
	if err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}
	if creds != nil && creds.RefreshToken != "" {
		// Server-side revocation failing is not a reason to keep a
		// local pair around.
		_ = m.client.post(ctx, "/api/v1/auth/logout", creds.AccessToken, map[string]string{
			"refreshToken": creds.RefreshToken,
		}, nil)
	}
	return m.store.Clear()
}
