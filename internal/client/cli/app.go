package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
	"github.com/dmitrijs2005/taskkeeper/internal/client/config"
	"github.com/dmitrijs2005/taskkeeper/internal/client/models"
	"github.com/dmitrijs2005/taskkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/taskkeeper/internal/filex"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// API is the subset of client.HTTPClient the commands use.
type API interface {
	SetToken(token string)
	Token() string
	Health(ctx context.Context) error
	Register(ctx context.Context, name, email string, password []byte) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) error
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error)
	GetTask(ctx context.Context, id string) (*models.Task, error)
	UpdateTask(ctx context.Context, id string, in models.TaskInput) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

type App struct {
	config  *config.Config
	api     API
	session metadata.Repository
	closer  io.Closer
	email   string
	Mode    Mode
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	dbPath, err := filex.EnsureParentDir(c.LocalDBPath)
	if err != nil {
		return nil, err
	}

	repos, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	api := client.NewHTTPClient(c.ServerEndpointAddr, c.RequestTimeout)

	return &App{
		config:  c,
		api:     api,
		session: repos.Metadata,
		closer:  repos,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

// Run restores the saved session, starts the REPL and closes the local
// database when the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.closer != nil {
			_ = a.closer.Close()
		}
	}()

	fmt.Fprintln(a.out, "Welcome to Taskkeeper CLI (type 'help' for commands)")

	if err := a.api.Health(ctx); err != nil {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}

	if err := a.restoreSession(ctx); err != nil {
		log.Printf("could not restore session: %s", err.Error())
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

func (a *App) isLoggedIn() bool {
	return a.api.Token() != ""
}

func (a *App) getStatus() string {
	s := ""
	if a.email != "" {
		s = a.email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// restoreSession loads a cached token and checks it against the server.
// A token the server refuses is forgotten; an unreachable server keeps it.
func (a *App) restoreSession(ctx context.Context) error {
	token, found, err := a.session.Get(ctx, metadata.KeyAccessToken)
	if err != nil || !found {
		return err
	}
	email, _, err := a.session.Get(ctx, metadata.KeyEmail)
	if err != nil {
		return err
	}

	a.api.SetToken(token)
	a.email = email

	if _, err := a.api.Profile(ctx); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Saved session has expired, please log in again")
			return a.forgetSession(ctx)
		}
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ModeOffline)
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", email)
	return nil
}

func (a *App) saveSession(ctx context.Context, email string) error {
	a.email = email
	if err := a.session.Set(ctx, metadata.KeyAccessToken, a.api.Token()); err != nil {
		return err
	}
	return a.session.Set(ctx, metadata.KeyEmail, email)
}

func (a *App) forgetSession(ctx context.Context) error {
	a.api.SetToken("")
	a.email = ""
	return a.session.Delete(ctx, metadata.KeyAccessToken, metadata.KeyEmail)
}

// report prints err for the user and keeps Mode and the session in step
// with what the server said.
func (a *App) report(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		a.setMode(ModeOffline)
		fmt.Fprintln(a.out, "Server unavailable, try again later")
		return err
	case errors.Is(err, client.ErrUnauthorized) && a.isLoggedIn():
		fmt.Fprintf(a.out, "Error: %s\n", err.Error())
		// Foreign tasks also answer 401, so only a refused profile read
		// means the token itself is dead.
		if _, perr := a.api.Profile(ctx); errors.Is(perr, client.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Session expired, please log in again")
			if ferr := a.forgetSession(ctx); ferr != nil {
				log.Printf("error clearing session: %s", ferr.Error())
			}
		}
		return err
	}
	a.setMode(ModeOnline)
	fmt.Fprintf(a.out, "Error: %s\n", err.Error())
	return err
}
