package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/client/api"
	"github.com/dmitrijs2005/notekeeper/internal/client/config"
	"github.com/dmitrijs2005/notekeeper/internal/client/repositories"
	"github.com/dmitrijs2005/notekeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/notekeeper/internal/client/services"
	"github.com/dmitrijs2005/notekeeper/internal/client/session"
	"github.com/dmitrijs2005/notekeeper/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Manager
	notes   services.NotesService
	account services.AccountService
	reader  *bufio.Reader
	out     io.Writer
	closer  io.Closer
	now     func() time.Time
}

// NewApp opens the configured session store and connects the client stack
// to stdin and stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(os.Stderr, c.LogLevel)

	store, closer, err := repositories.OpenMetadata(ctx, repositories.Options{
		Driver:     c.StoreDriver,
		SQLitePath: c.StorePath,
		RedisURL:   c.RedisURL,
	})
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	client := api.NewClient(c.ServerURL, c.RequestTimeout, log)
	app := newApp(c, log, client, store, os.Stdin, os.Stdout)
	app.closer = closer
	return app, nil
}

func newApp(c *config.Config, log logging.Logger, client *api.Client, store metadata.Repository, in io.Reader, out io.Writer) *App {
	sess := session.New(client, store, log)
	notes := services.NewNotesService(sess, client)

	return &App{
		config:  c,
		log:     log,
		session: sess,
		notes:   notes,
		account: services.NewAccountService(sess, client, notes),
		reader:  bufio.NewReader(in),
		out:     out,
		now:     time.Now,
	}
}

// Run restores the saved session and serves commands until exit or EOF.
func (a *App) Run(ctx context.Context) error {
	if a.closer != nil {
		defer a.closer.Close()
	}

	fmt.Fprintln(a.out, "Welcome to notekeeper (type 'help' for commands)")
	if a.session.Restore(ctx) == session.StateAuthenticated {
		fmt.Fprintf(a.out, "Signed in as %s\n", a.session.User().Username)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return fmt.Sprintf("(%s)", u.Username)
	}
	return "(signed out)"
}
