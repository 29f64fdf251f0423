package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/fileexplorer/internal/client/api"
	"github.com/dmitrijs2005/fileexplorer/internal/client/config"
	"github.com/dmitrijs2005/fileexplorer/internal/client/session"
)

type App struct {
	config   *config.Config
	api      *api.Client
	nav      *session.Navigator
	types    map[string][]string
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	apiClient := api.New(c.ServerURL, c.RequestTimeout)

	return &App{
		config: c,
		api:    apiClient,
		nav:    session.NewNavigator(),
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}

// getStatus renders the prompt suffix: the current path, plus the user
// name when logged in.
func (a *App) getStatus() string {
	s := a.nav.Current()
	if a.userName != "" {
		s = fmt.Sprintf("%s %s", a.userName, s)
	}
	return fmt.Sprintf("(%s)", s)
}
