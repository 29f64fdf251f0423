package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/fileexplorer/internal/logging"
	"github.com/dmitrijs2005/fileexplorer/internal/server/config"
	"github.com/dmitrijs2005/fileexplorer/internal/server/files"
	"github.com/dmitrijs2005/fileexplorer/internal/server/users"
	"github.com/stretchr/testify/require"
)

// testConfig returns a config with ceilings high enough that rate limits
// never interfere with functional tests.
func testConfig(baseDir, usersFile string) *config.Config {
	return &config.Config{
		EndpointAddr:          ":0",
		DataDir:               baseDir,
		UsersFile:             usersFile,
		SecretKey:             "test-secret",
		TokenValidityDuration: time.Hour,
		RateLimitWindow:       time.Minute,
		APIRateLimit:          100000,
		FileRateLimit:         100000,
		AuthRateLimit:         100000,
	}
}

func newTestServer(t *testing.T, cfg *config.Config) (*HTTPServer, http.Handler, string) {
	t.Helper()

	base := t.TempDir()
	if cfg == nil {
		cfg = testConfig(base, filepath.Join(t.TempDir(), "users.json"))
	} else if cfg.DataDir == "" {
		cfg.DataDir = base
	}

	repo := users.NewJSONFileRepository(cfg.UsersFile)
	us := users.NewService(repo, cfg)

	resolver, err := files.NewResolver(cfg.DataDir)
	require.NoError(t, err)
	fs := files.NewService(resolver)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	s := NewHTTPServer(logger, us, fs, cfg)
	return s, s.Handler(), cfg.DataDir
}

func doJSON(t *testing.T, h http.Handler, method, target string, body any, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	for _, m := range mutate {
		m(req)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func withBearer(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

// registerAndLogin provisions a user through the API and returns a valid
// session token.
func registerAndLogin(t *testing.T, h http.Handler, username, password string) string {
	t.Helper()

	rr := doJSON(t, h, http.MethodPost, "/api/auth/register",
		map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = doJSON(t, h, http.MethodPost, "/api/auth/login",
		map[string]string{"username": username, "password": password})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	resp := decodeBody[loginResponse](t, rr)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
