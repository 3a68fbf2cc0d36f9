package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
	"github.com/stretchr/testify/assert"
)

var errBoom = errors.New("connection reset by peer")

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (string, error) {
	if token == "good" {
		return "u1", nil
	}
	return "", common.ErrInvalidToken
}

type failingUsers struct{ err error }

func (f failingUsers) Register(context.Context, string, string, string) (*models.User, string, error) {
	return nil, "", f.err
}
func (f failingUsers) Login(context.Context, string, string) (string, error) { return "", f.err }
func (f failingUsers) Profile(context.Context, string) (*models.User, error) { return nil, f.err }
func (f failingUsers) UpdateProfile(context.Context, string, services.ProfileUpdate) (*models.User, error) {
	return nil, f.err
}

type failingTasks struct{ err error }

func (f failingTasks) Create(context.Context, string, models.TaskPatch) (*models.Task, error) {
	return nil, f.err
}
func (f failingTasks) List(context.Context, string) ([]*models.Task, error) { return nil, f.err }
func (f failingTasks) Get(context.Context, string, string) (*models.Task, error) {
	return nil, f.err
}
func (f failingTasks) Update(context.Context, string, string, models.TaskPatch) (*models.Task, error) {
	return nil, f.err
}
func (f failingTasks) Delete(context.Context, string, string) error { return f.err }

func newFailingServer(err error) *Server {
	return NewServer(Options{BasePath: "/api", ShutdownTimeout: time.Second}, logging.Nop(),
		failingUsers{err}, failingTasks{err}, stubVerifier{})
}

func TestInternalErrorsAreGeneric(t *testing.T) {
	srv := newFailingServer(errBoom)

	cases := []struct {
		method, path, body, want string
	}{
		{http.MethodPost, "/api/auth/register", `{"email":"a@x.com","password":"secret1"}`, `{"errors":[{"msg":"Server error during registration"}]}`},
		{http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"secret1"}`, `{"errors":[{"msg":"Server error during login"}]}`},
		{http.MethodGet, "/api/auth/profile", "", `{"msg":"Server error"}`},
		{http.MethodPost, "/api/tasks", `{"title":"x"}`, `{"msg":"Server error while creating task"}`},
		{http.MethodGet, "/api/tasks", "", `{"msg":"Server error while fetching tasks"}`},
		{http.MethodGet, "/api/tasks/abc", "", `{"msg":"Server error while fetching task"}`},
		{http.MethodPut, "/api/tasks/abc", `{"title":"x"}`, `{"msg":"Server error while updating task"}`},
		{http.MethodDelete, "/api/tasks/abc", "", `{"msg":"Server error while deleting task"}`},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			var req *http.Request
			if tc.body != "" {
				req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tc.method, tc.path, nil)
			}
			req.Header.Set("Authorization", "Bearer good")

			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, tc.want, rec.Body.String())
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

func TestGuardMessage_UnknownFallsBackToInvalid(t *testing.T) {
	assert.Equal(t, "Token is not valid", guardMessage(errors.New("weird")))
	assert.Equal(t, "Token is expired", guardMessage(common.ErrTokenExpired))
}

func TestPanicIsRecovered(t *testing.T) {
	srv := NewServer(Options{BasePath: "/api"}, logging.Nop(), failingUsers{}, panickingTasks{}, stubVerifier{})

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}

type panickingTasks struct{ failingTasks }

func (panickingTasks) List(context.Context, string) ([]*models.Task, error) { panic("boom") }
