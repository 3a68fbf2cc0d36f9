// Package rest exposes the account and task operations over HTTP/JSON using
// echo. It is the only layer that turns errors into status codes.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Users is the account logic the handlers depend on.
type Users interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, upd services.ProfileUpdate) (*models.User, error)
}

// Tasks is the task logic the handlers depend on. Every method is scoped to
// the calling user.
type Tasks interface {
	Create(ctx context.Context, userID string, in models.TaskPatch) (*models.Task, error)
	List(ctx context.Context, userID string) ([]*models.Task, error)
	Get(ctx context.Context, userID, id string) (*models.Task, error)
	Update(ctx context.Context, userID, id string, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, userID, id string) error
}

// TokenVerifier resolves a bearer token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

type Server struct {
	address         string
	basePath        string
	shutdownTimeout time.Duration
	logger          logging.Logger
	users           Users
	tasks           Tasks
	tokens          TokenVerifier
	now             func() time.Time
	echo            *echo.Echo
}

// Options groups the listener settings of a Server.
type Options struct {
	Address         string
	BasePath        string
	ShutdownTimeout time.Duration
}

func NewServer(opts Options, l logging.Logger, us Users, ts Tasks, tokens TokenVerifier) *Server {
	s := &Server{
		address:         opts.Address,
		basePath:        opts.BasePath,
		shutdownTimeout: opts.ShutdownTimeout,
		logger:          l.With("module", "http_server"),
		users:           us,
		tasks:           ts,
		tokens:          tokens,
		now:             time.Now,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.httpErrorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(s.requestLogger())

	s.echo = e
	s.routes()
	return s
}

// Handler returns the root http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Addr returns the bound listener address once Run has started listening.
func (s *Server) Addr() net.Addr {
	return s.echo.ListenerAddr()
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests for
// at most the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address, "base_path", s.basePath)
		if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
