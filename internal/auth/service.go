// Package auth owns the token lifecycle: it signs the student in and
// out, and validates the stored session against the server.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anuvat/anuvat/internal/api"
)

const authPath = "/users"

// User is the server's view of the signed-in student. It is never
// persisted locally; identity checks refetch it.
type User struct {
	ID    json.Number `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  string      `json:"role"`
}

// CredentialStore persists the token and the joined classroom id.
type CredentialStore interface {
	SaveToken(token string) error
	ClearCredentials() error
}

// Service implements login, registration, logout and the session
// validity check over the API client and the credential store.
type Service struct {
	api   *api.Client
	creds CredentialStore
}

// NewService creates an auth Service.
func NewService(client *api.Client, creds CredentialStore) *Service {
	return &Service{api: client, creds: creds}
}

type authPayload struct {
	Data struct {
		IDToken string `json:"idToken"`
		User    User   `json:"user"`
	} `json:"data"`
}

// Login exchanges credentials for a token, persists the token, then
// re-validates identity against the server. The returned user is the
// one the login response reported.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	user, err := s.authenticate(ctx, authPath+"/login", body)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return user, nil
}

// Register creates an account and signs it in, following the same token
// persistence and re-validation flow as Login.
func (s *Service) Register(ctx context.Context, email, password, name string) (*User, error) {
	body := map[string]string{"email": email, "password": password, "name": name}
	user, err := s.authenticate(ctx, authPath+"/register", body)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	return user, nil
}

func (s *Service) authenticate(ctx context.Context, path string, body map[string]string) (*User, error) {
	raw, err := s.api.Do(ctx, http.MethodPost, path, body, false, api.WithSchema(api.LoginResponseSchema))
	if err != nil {
		return nil, err
	}

	var payload authPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode auth response: %w", err)
	}

	// The token must be persisted before the identity re-check runs,
	// so a follow-up CurrentUser sees the signed-in state.
	if err := s.creds.SaveToken(payload.Data.IDToken); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}

	if _, err := s.CurrentUser(ctx); err != nil {
		return nil, fmt.Errorf("verify session: %w", err)
	}

	return &payload.Data.User, nil
}

// CurrentUser validates the stored session with GET /users/me.
//
// Returns (user, nil) when signed in and (nil, nil) when signed out:
// a missing token or a 401/403 clears the stored credentials so a stale
// token cannot keep failing forever. Transient failures (network,
// server errors) are returned as errors and do NOT clear credentials;
// an outage must not log the student out.
func (s *Service) CurrentUser(ctx context.Context) (*User, error) {
	raw, err := s.api.Get(ctx, authPath+"/me", api.WithSchema(api.MeResponseSchema))
	if err != nil {
		if api.IsAuthFailure(err) {
			if clearErr := s.creds.ClearCredentials(); clearErr != nil {
				return nil, fmt.Errorf("clear stale credentials: %w", clearErr)
			}
			return nil, nil
		}
		return nil, err
	}

	var payload struct {
		Data struct {
			User User `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode user response: %w", err)
	}
	return &payload.Data.User, nil
}

// Logout clears the token and the classroom id unconditionally. No
// remote call is made; the server session simply stops being used.
func (s *Service) Logout() error {
	return s.creds.ClearCredentials()
}
