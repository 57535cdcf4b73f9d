package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anuvat/anuvat/internal/store"
)

// staticTokens is a TokenSource returning a fixed token.
type staticTokens struct {
	token string
	ok    bool
	err   error
}

func (s staticTokens) Token() (string, bool, error) {
	return s.token, s.ok, s.err
}

func testClient(t *testing.T, handler http.Handler, tokens TokenSource, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	cfg := Config{BaseURL: server.URL, Timeout: 5 * time.Second}
	return New(cfg, tokens, opts...), server
}

func TestDo_MissingTokenFailsBeforeNetworkIO(t *testing.T) {
	hits := 0
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}), staticTokens{ok: false})

	_, err := client.Get(context.Background(), "/users/me")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTokenMissing)
	assert.True(t, IsAuthFailure(err))
	assert.Equal(t, 0, hits, "no request should reach the server")
}

func TestDo_Headers(t *testing.T) {
	var gotAuth, gotContentType string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"data":{}}`))
	}), staticTokens{token: "tok-abc", ok: true})

	_, err := client.Get(context.Background(), "/users/me")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestDo_UnauthenticatedOmitsAuthHeader(t *testing.T) {
	var gotAuth string
	var gotBody map[string]string
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"data":{}}`))
	}), staticTokens{ok: false})

	body := map[string]string{"email": "student@anuvat.edu", "password": "password"}
	_, err := client.Do(context.Background(), http.MethodPost, "/users/login", body, false)
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Equal(t, body, gotBody)
}

func TestDo_NilBodyOmitsRequestBody(t *testing.T) {
	var gotLen int64
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLen = r.ContentLength
		_, _ = w.Write([]byte(`{"data":{}}`))
	}), staticTokens{token: "t", ok: true})

	_, err := client.Get(context.Background(), "/classrooms/1/materials")
	require.NoError(t, err)
	assert.LessOrEqual(t, gotLen, int64(0))
}

func TestDo_NoContentReturnsNil(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), staticTokens{token: "t", ok: true})

	raw, err := client.Get(context.Background(), "/users/me")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestDo_ErrorBodyMessage(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "message from error envelope",
			status:  http.StatusUnauthorized,
			body:    `{"message":"Invalid credentials."}`,
			wantMsg: "Invalid credentials.",
		},
		{
			name:    "unparseable body falls back to status text",
			status:  http.StatusBadGateway,
			body:    `<html>nope</html>`,
			wantMsg: "HTTP error, status: 502 Bad Gateway",
		},
		{
			name:    "empty message falls back to status text",
			status:  http.StatusNotFound,
			body:    `{}`,
			wantMsg: "HTTP error, status: 404 Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}), staticTokens{token: "t", ok: true})

			_, err := client.Get(context.Background(), "/classrooms/1/details")
			require.Error(t, err)

			var se *StatusError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.status, se.StatusCode)
			assert.Equal(t, tt.wantMsg, se.Message)
		})
	}
}

func TestDo_AuthFailureClassification(t *testing.T) {
	assert.True(t, IsAuthFailure(&StatusError{StatusCode: http.StatusUnauthorized}))
	assert.True(t, IsAuthFailure(&StatusError{StatusCode: http.StatusForbidden}))
	assert.False(t, IsAuthFailure(&StatusError{StatusCode: http.StatusInternalServerError}))
	assert.False(t, IsAuthFailure(errors.New("dial tcp: connection refused")))
}

func TestDo_SchemaValidationFailsClosed(t *testing.T) {
	schema := envelopeSchema("login-test", map[string]any{
		"type":     "object",
		"required": []any{"idToken"},
	})

	t.Run("valid shape", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":{"idToken":"tok"}}`))
		}), staticTokens{ok: false})

		raw, err := client.Do(context.Background(), http.MethodPost, "/users/login", nil, false, WithSchema(schema))
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":{"idToken":"tok"}}`, string(raw))
	})

	t.Run("shape mismatch", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":{}}`))
		}), staticTokens{ok: false})

		_, err := client.Do(context.Background(), http.MethodPost, "/users/login", nil, false, WithSchema(schema))
		require.Error(t, err)

		var inv *ErrInvalidResponse
		assert.ErrorAs(t, err, &inv)
	})

	t.Run("non-JSON body", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}), staticTokens{ok: false})

		_, err := client.Do(context.Background(), http.MethodPost, "/users/login", nil, false, WithSchema(schema))
		var inv *ErrInvalidResponse
		require.ErrorAs(t, err, &inv)
	})
}

func TestDo_EventsLogged(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/me" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"token expired"}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{}}`))
	}), staticTokens{token: "t", ok: true}, WithEventLog(st))

	ctx := context.Background()
	_, err = client.Get(ctx, "/classrooms/9/details")
	require.NoError(t, err)
	_, err = client.Get(ctx, "/users/me")
	require.Error(t, err)

	events, err := st.RecentAPIEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)

	byPath := map[string]store.APIEvent{}
	for _, ev := range events {
		byPath[ev.Path] = ev
	}
	assert.True(t, byPath["/classrooms/9/details"].Success)
	failed := byPath["/users/me"]
	assert.False(t, failed.Success)
	assert.Equal(t, http.StatusUnauthorized, failed.Status)
	assert.Contains(t, failed.Error, "token expired")
}
