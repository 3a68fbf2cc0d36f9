package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/client/client"
	"github.com/dmitrijs2005/taskkeeper/internal/client/models"
	"github.com/stretchr/testify/require"
)

// fakeAPI records calls and serves canned answers. Tasks live in memory.
type fakeAPI struct {
	token string
	calls []string

	healthErr   error
	registerErr error
	loginErr    error
	profileErr  error
	updateErr   error
	taskErr     error

	user      models.User
	lastLogin string
	lastPass  string
	lastUpd   models.ProfileUpdate
	lastInput models.TaskInput
	tasks     map[string]*models.Task
	order     []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		user:  models.User{ID: "u1", Name: "Alice", Email: "alice@example.com", CreatedAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
		tasks: map[string]*models.Task{},
	}
}

func (f *fakeAPI) SetToken(token string) { f.token = token }
func (f *fakeAPI) Token() string         { return f.token }

func (f *fakeAPI) Health(ctx context.Context) error {
	f.calls = append(f.calls, "health")
	return f.healthErr
}

func (f *fakeAPI) Register(ctx context.Context, name, email string, password []byte) (*models.User, error) {
	f.calls = append(f.calls, "register")
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.lastPass = string(password)
	f.user.Name, f.user.Email = name, strings.ToLower(email)
	f.token = "reg-token"
	u := f.user
	return &u, nil
}

func (f *fakeAPI) Login(ctx context.Context, email string, password []byte) error {
	f.calls = append(f.calls, "login")
	f.lastLogin, f.lastPass = email, string(password)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.token = "login-token"
	return nil
}

func (f *fakeAPI) Profile(ctx context.Context) (*models.User, error) {
	f.calls = append(f.calls, "profile")
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	u := f.user
	return &u, nil
}

func (f *fakeAPI) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	f.calls = append(f.calls, "update_profile")
	f.lastUpd = upd
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if upd.Name != nil {
		f.user.Name = *upd.Name
	}
	if upd.Email != nil {
		f.user.Email = *upd.Email
	}
	u := f.user
	return &u, nil
}

func (f *fakeAPI) ListTasks(ctx context.Context) ([]models.Task, error) {
	f.calls = append(f.calls, "list")
	if f.taskErr != nil {
		return nil, f.taskErr
	}
	out := make([]models.Task, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		out = append(out, *f.tasks[f.order[i]])
	}
	return out, nil
}

func (f *fakeAPI) CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	f.calls = append(f.calls, "create")
	f.lastInput = in
	if f.taskErr != nil {
		return nil, f.taskErr
	}
	t := f.put(in.Title, in.Status)
	if in.Description != nil {
		t.Description = *in.Description
	}
	return t, nil
}

func (f *fakeAPI) GetTask(ctx context.Context, id string) (*models.Task, error) {
	f.calls = append(f.calls, "get")
	if f.taskErr != nil {
		return nil, f.taskErr
	}
	t, ok := f.tasks[id]
	if !ok {
		return nil, &client.APIError{Status: 404, Messages: []string{"Task not found"}}
	}
	c := *t
	return &c, nil
}

func (f *fakeAPI) UpdateTask(ctx context.Context, id string, in models.TaskInput) (*models.Task, error) {
	f.calls = append(f.calls, "update")
	f.lastInput = in
	t, ok := f.tasks[id]
	if !ok {
		return nil, &client.APIError{Status: 404, Messages: []string{"Task not found"}}
	}
	t.Title, t.Status = in.Title, in.Status
	c := *t
	return &c, nil
}

func (f *fakeAPI) DeleteTask(ctx context.Context, id string) error {
	f.calls = append(f.calls, "delete")
	if _, ok := f.tasks[id]; !ok {
		return &client.APIError{Status: 404, Messages: []string{"Task not found"}}
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeAPI) put(title, status string) *models.Task {
	if status == "" {
		status = models.StatusPending
	}
	id := "t" + string(rune('0'+len(f.order)+1))
	t := &models.Task{ID: id, User: f.user.ID, Title: title, Status: status, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	f.tasks[id] = t
	f.order = append(f.order, id)
	return t
}

// newTestApp builds an App over fake and a real on-disk session cache.
// Prompts read from input.
func newTestApp(t *testing.T, api *fakeAPI, input string) (*App, *bytes.Buffer) {
	t.Helper()
	repos, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	var out bytes.Buffer
	return &App{
		api:     api,
		session: repos.Metadata,
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     &out,
	}, &out
}

// stubPasswords makes getPassword return the given answers in order.
func stubPasswords(t *testing.T, answers ...string) {
	t.Helper()
	orig := getPassword
	t.Cleanup(func() { getPassword = orig })
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if len(answers) == 0 {
			return nil, io.EOF
		}
		pw := answers[0]
		answers = answers[1:]
		return []byte(pw), nil
	}
}
