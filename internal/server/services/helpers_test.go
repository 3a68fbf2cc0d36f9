package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/taskkeeper/internal/server/testutil"
)

var errBoom = errors.New("boom")

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		SecretKey:                   "test-secret",
		AccessTokenValidityDuration: time.Hour,
		BcryptCost:                  4,
	}
}

func testTokens() *auth.TokenService {
	cfg := testConfig()
	return auth.NewTokenService([]byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
}

// fakeUsersRepo is an in-memory users.Repository keyed by id.
type fakeUsersRepo struct {
	byID map[string]*models.User

	getErr    error
	createErr error
	updateErr error
	updates   int
}

func newFakeUsersRepo(us ...*models.User) *fakeUsersRepo {
	f := &fakeUsersRepo{byID: map[string]*models.User{}}
	for _, u := range us {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return common.ErrorAlreadyExists
		}
	}
	c := *u
	f.byID[u.ID] = &c
	return nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *u
	return &c, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.byID {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) Update(ctx context.Context, u *models.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[u.ID]; !ok {
		return common.ErrorNotFound
	}
	f.updates++
	c := *u
	f.byID[u.ID] = &c
	return nil
}

// fakeTasksRepo is an in-memory tasks.Repository.
type fakeTasksRepo struct {
	byID map[string]*models.Task

	err     error
	deleted []string
}

func newFakeTasksRepo(ts ...*models.Task) *fakeTasksRepo {
	f := &fakeTasksRepo{byID: map[string]*models.Task{}}
	for _, t := range ts {
		f.byID[t.ID] = t
	}
	return f
}

func (f *fakeTasksRepo) Create(ctx context.Context, t *models.Task) error {
	if f.err != nil {
		return f.err
	}
	c := *t
	f.byID[t.ID] = &c
	return nil
}

func (f *fakeTasksRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *t
	return &c, nil
}

func (f *fakeTasksRepo) ListByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*models.Task
	for _, t := range f.byID {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTasksRepo) Update(ctx context.Context, t *models.Task) error {
	existing, ok := f.byID[t.ID]
	if !ok || existing.UserID != t.UserID {
		return common.ErrorNotFound
	}
	c := *t
	f.byID[t.ID] = &c
	return nil
}

func (f *fakeTasksRepo) Delete(ctx context.Context, id, userID string) error {
	existing, ok := f.byID[id]
	if !ok || existing.UserID != userID {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTasksRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository         { return m.u }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasks.Repository         { return m.t }

func mustUser(t *testing.T, id, email, password string) *models.User {
	t.Helper()
	u := &models.User{ID: id, Name: "User " + id, Email: email, CreatedAt: fixedNow}
	if err := u.SetPassword(password, 4); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	return u
}

// sqliteServices wires both services to a fresh migrated SQLite database.
func sqliteServices(t *testing.T) (*UserService, *TaskService) {
	t.Helper()
	db := testutil.OpenSQLite(t)
	m := &repomanager.SQLiteRepositoryManager{}
	return NewUserService(db, m, testTokens(), testConfig()), NewTaskService(db, m)
}
