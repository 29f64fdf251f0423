// Package server initializes and runs the file explorer server. It wires
// the credential store, the sandboxed file service, and the HTTP endpoint,
// and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/fileexplorer/internal/common"
	"github.com/dmitrijs2005/fileexplorer/internal/logging"
	"github.com/dmitrijs2005/fileexplorer/internal/server/config"
	"github.com/dmitrijs2005/fileexplorer/internal/server/files"
	"github.com/dmitrijs2005/fileexplorer/internal/server/httpapi"
	"github.com/dmitrijs2005/fileexplorer/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
	fileService *files.Service
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	if c.SecretKey == "" {
		secret, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("secret generation error: %w", err)
		}
		c.SecretKey = secret
		logger.Warn(context.Background(),
			"JWT secret not configured, generated an ephemeral one; tokens will not survive a restart")
	}

	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("data dir init error: %w", err)
	}

	usersFile := c.UsersFile
	if usersFile == "" {
		usersFile = filepath.Join(c.DataDir, "users.json")
	}
	us := users.NewService(users.NewJSONFileRepository(usersFile), c)

	resolver, err := files.NewResolver(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("resolver init error: %w", err)
	}
	fs := files.NewService(resolver)

	return &App{config: c, logger: logger, userService: us, fileService: fs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewHTTPServer(app.logger, app.userService, app.fileService, app.config)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...", "data_dir", app.config.DataDir)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
