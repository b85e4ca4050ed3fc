//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/sweetlab/sweetshop-backend/internal/adapter/postgres"
	sweetrepo "github.com/sweetlab/sweetshop-backend/internal/adapter/postgres/sweet"
	"github.com/sweetlab/sweetshop-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/sweetlab/sweetshop-backend/internal/adapter/postgres/user"
	authpkg "github.com/sweetlab/sweetshop-backend/internal/auth"
	"github.com/sweetlab/sweetshop-backend/internal/config"
	authsvc "github.com/sweetlab/sweetshop-backend/internal/service/auth"
	"github.com/sweetlab/sweetshop-backend/internal/service/catalog"
	"github.com/sweetlab/sweetshop-backend/internal/service/inventory"
	"github.com/sweetlab/sweetshop-backend/internal/transport/middleware"
	"github.com/sweetlab/sweetshop-backend/internal/transport/rest"
)

// testServer wraps the full HTTP stack for end-to-end tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	users := userrepo.New(pool)
	sweets := sweetrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)
	hasher := authpkg.NewHasher(4) // low cost keeps the suite fast

	authService := authsvc.NewService(logger, users, jwtMgr, hasher)
	catalogService := catalog.NewService(logger, sweets, txm)
	inventoryService := inventory.NewService(logger, sweets, config.InventoryConfig{LowStockThreshold: 10})

	handlers := rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Sweets:    rest.NewSweetHandler(catalogService, logger),
		Inventory: rest.NewInventoryHandler(inventoryService, logger),
		Health:    rest.NewHealthHandler(pool, "e2e"),
	}

	router := rest.NewRouter(handlers,
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON issues a request with an optional JSON body and bearer token, and
// decodes the response envelope.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// data extracts the "data" object from a success envelope.
func data(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	d, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected data object, got: %v", result)
	return d
}

var userSeq int

// registerUser registers a fresh user through the API and returns its token.
func registerUser(t *testing.T, ts *testServer) string {
	t.Helper()

	userSeq++
	username := fmt.Sprintf("e2e_user_%d_%d", time.Now().UnixNano(), userSeq)

	status, result := ts.doJSON(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, status, "register failed: %v", result)

	token, ok := data(t, result)["token"].(string)
	require.True(t, ok, "expected token in register response")
	return token
}

// registerAdmin seeds an admin user directly and logs in through the API.
func registerAdmin(t *testing.T, ts *testServer) string {
	t.Helper()

	admin := testhelper.SeedAdmin(t, ts.Pool)

	status, result := ts.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"username": admin.Username,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, status, "admin login failed: %v", result)

	token, ok := data(t, result)["token"].(string)
	require.True(t, ok, "expected token in login response")
	return token
}
