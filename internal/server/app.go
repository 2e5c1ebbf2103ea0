// Package server wires configuration, storage, the HTTP API and the browser
// assets together and runs them until the process is signalled.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/crmdash/internal/airtable"
	"github.com/dmitrijs2005/crmdash/internal/logging"
	"github.com/dmitrijs2005/crmdash/internal/server/api"
	"github.com/dmitrijs2005/crmdash/internal/server/config"
	"github.com/dmitrijs2005/crmdash/internal/server/details"
	"github.com/dmitrijs2005/crmdash/internal/server/storage"
	"github.com/dmitrijs2005/crmdash/internal/server/users"
	"github.com/dmitrijs2005/crmdash/internal/server/web"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	userService    *users.Service
	detailsService *details.Service
	httpServer     *api.HTTPServer
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.NewJSON(os.Stdout, c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	return newApp(c, logger)
}

func newApp(c *config.Config, logger logging.Logger) (*App, error) {
	rm := repositoryManager(c, logger)

	us := users.NewService(rm.Users())
	ds := details.NewService(rm.Details())

	assets, err := web.Assets(c.StaticDir)
	if err != nil {
		return nil, fmt.Errorf("static assets error: %w", err)
	}

	hs, err := api.NewHTTPServer(c.ListenAddr, logger, us, ds, web.Handler(assets), c.MaxBodyBytes)
	if err != nil {
		return nil, fmt.Errorf("http server init error: %w", err)
	}

	return &App{config: c, logger: logger, userService: us, detailsService: ds, httpServer: hs}, nil
}

func repositoryManager(c *config.Config, logger logging.Logger) storage.RepositoryManager {
	if c.InMemory {
		logger.Warn(context.Background(), "using in-memory storage, data is lost on exit",
			"demo_email", storage.DemoAccount.Email)
		return storage.NewInMemoryRepositoryManager()
	}

	if c.AirtableToken == "" || c.AirtableBaseID == "" {
		logger.Warn(context.Background(), "Airtable credentials are not set, API calls will fail")
	}

	client := airtable.NewClient(airtable.Config{
		Token:   c.AirtableToken,
		BaseID:  c.AirtableBaseID,
		BaseURL: c.AirtableBaseURL,
	}, logger)

	return storage.NewAirtableRepositoryManager(client, storage.Tables{
		Users:   c.UsersTable,
		Details: c.DetailsTable,
	})
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
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a termination signal arrives or the
// HTTP server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
