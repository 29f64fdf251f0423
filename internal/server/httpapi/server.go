package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/fileexplorer/internal/logging"
	"github.com/dmitrijs2005/fileexplorer/internal/server/config"
	"github.com/dmitrijs2005/fileexplorer/internal/server/files"
	"github.com/dmitrijs2005/fileexplorer/internal/server/users"
	"github.com/gorilla/mux"
)

type HTTPServer struct {
	address string
	logger  logging.Logger
	users   *users.Service
	files   *files.Service

	apiLimiter  *clientLimiter
	fileLimiter *clientLimiter
	authLimiter *clientLimiter
}

func NewHTTPServer(l logging.Logger, us *users.Service, fs *files.Service, cfg *config.Config) *HTTPServer {
	return &HTTPServer{
		address: cfg.EndpointAddr,
		logger:  l.With("module", "http_server"),
		users:   us,
		files:   fs,
		apiLimiter: newClientLimiter(cfg.APIRateLimit, cfg.RateLimitWindow,
			"Too many requests from this IP, please try again later."),
		fileLimiter: newClientLimiter(cfg.FileRateLimit, cfg.RateLimitWindow,
			"Too many file requests, please try again later."),
		authLimiter: newClientLimiter(cfg.AuthRateLimit, cfg.RateLimitWindow,
			"Too many authentication attempts, please try again later."),
	}
}

// Handler builds the route table. Route modules are wired statically:
// auth, files, code editor, and the per-type info endpoints.
func (s *HTTPServer) Handler() http.Handler {
	r := mux.NewRouter()
	// Path confinement is enforced by the resolver, not by URL cleaning;
	// skipping the router's clean-and-redirect keeps ".." segments visible
	// so they are rejected with 403 instead of silently rewritten.
	r.SkipClean(true)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.limitMiddleware(s.apiLimiter))

	api.HandleFunc("/config/file-types", s.handleFileTypes).Methods(http.MethodGet)

	api.HandleFunc("/auth/status", s.handleAuthStatus).Methods(http.MethodGet)
	api.HandleFunc("/auth/register", s.limitFailures(s.authLimiter, s.handleRegister)).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.limitFailures(s.authLimiter, s.handleLogin)).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", s.handleLogout).Methods(http.MethodPost)

	api.HandleFunc("/files", s.limit(s.fileLimiter, s.optionalAuth(s.handleListFiles))).Methods(http.MethodGet)
	api.HandleFunc("/file/{path:.*}", s.limit(s.fileLimiter, s.optionalAuth(s.handleServeFile))).Methods(http.MethodGet)

	api.HandleFunc("/code/read/{path:.*}", s.handleCodeRead).Methods(http.MethodGet)
	api.HandleFunc("/code/save/{path:.*}", s.requireAuth(s.handleCodeSave)).Methods(http.MethodPost)

	api.HandleFunc("/image/info/{path:.*}", s.handleImageInfo).Methods(http.MethodGet)
	api.HandleFunc("/pdf/info/{path:.*}", s.handlePDFInfo).Methods(http.MethodGet)
	api.HandleFunc("/office/info/{path:.*}", s.handleOfficeInfo).Methods(http.MethodGet)

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled, draining in-flight requests.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
