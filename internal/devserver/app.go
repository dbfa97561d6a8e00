// Package devserver runs an in-memory backend that speaks the notekeeper
// wire protocol, for local development and end-to-end tests.
package devserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/devserver/config"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/handler"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/repositories/repomanager"
	"github.com/dmitrijs2005/notekeeper/internal/devserver/services"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
	noteService *services.NotesService
}

// NewApp wires the stores, services and logger. now may be nil.
func NewApp(c *config.Config, logger logging.Logger, mailer services.Mailer, now func() time.Time) *App {
	if logger == nil {
		logger = logging.New(os.Stdout, c.LogLevel)
	}
	if mailer == nil {
		mailer = services.LogMailer{Log: logger}
	}

	rm := repomanager.NewInMemoryRepositoryManager(now)
	return &App{
		config:      c,
		logger:      logger,
		userService: services.NewUserService(rm, mailer, c, logger, now),
		noteService: services.NewNotesService(rm),
	}
}

// Handler returns the HTTP handler serving every endpoint.
func (app *App) Handler() http.Handler {
	return handler.New(app.userService, app.noteService, app.logger).Router()
}

// Run serves on the configured address until ctx is cancelled or a signal
// arrives, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		return err
	}
	return app.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	srv := &http.Server{
		Handler:           app.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	var (
		wg       sync.WaitGroup
		serveErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		app.logger.Info(ctx, "devserver listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr = err
			cancelFunc()
		}
	}()

	<-ctx.Done()
	app.logger.Info(context.Background(), "shutting down devserver")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown failed", "err", err)
	}
	wg.Wait()

	return serveErr
}
