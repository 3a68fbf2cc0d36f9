// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, profile reads and profile
// updates.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ProfileUpdate carries the optional fields of a profile change. Nil fields
// are left untouched; empty Email, CurrentPassword and NewPassword count as
// absent.
type ProfileUpdate struct {
	Name            *string
	Email           *string
	CurrentPassword *string
	NewPassword     *string
}

// UserService provides account operations:
// - Register: create an account and issue its first token
// - Login: verify credentials and issue a token
// - Profile / UpdateProfile: read and change the caller's own account
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *auth.TokenService
	bcryptCost  int
	now         func() time.Time
	dummyHash   func() []byte
}

// NewUserService constructs a UserService using repositories, the token
// service and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens *auth.TokenService, cfg *config.Config) *UserService {
	cost := cfg.BcryptCost
	return &UserService{
		db:          db,
		repomanager: m,
		tokens:      tokens,
		bcryptCost:  cost,
		now:         time.Now,
		dummyHash: sync.OnceValue(func() []byte {
			h, _ := bcrypt.GenerateFromPassword([]byte("taskkeeper-dummy-password"), cost)
			return h
		}),
	}
}

// WithClock replaces the time source used for CreatedAt.
func (s *UserService) WithClock(now func() time.Time) *UserService {
	s.now = now
	return s
}

// Register creates an account for email and returns it with a fresh token.
// A taken email yields common.ErrorAlreadyExists, whether found by the
// pre-check or by the unique index.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	email = common.NormalizeEmail(email)
	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, "", common.ErrorAlreadyExists
	case !errors.Is(err, common.ErrorNotFound):
		return nil, "", fmt.Errorf("error checking email: %w", err)
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		CreatedAt: s.now().UTC(),
	}
	if err := user.SetPassword(password, s.bcryptCost); err != nil {
		return nil, "", fmt.Errorf("error hashing password: %w", err)
	}

	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", common.ErrorAlreadyExists
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	return user, token, nil
}

// VerifyCredentials returns the account matching email and password. An
// unknown email and a wrong password both yield common.ErrInvalidCredentials
// after a bcrypt comparison.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, common.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			dummy := models.User{PasswordHash: s.dummyHash()}
			_ = dummy.CheckPassword(password)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !user.CheckPassword(password) {
		return nil, common.ErrInvalidCredentials
	}

	return user, nil
}

// Login verifies the credentials and issues a token for the account.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.VerifyCredentials(ctx, email, password)
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}
	return token, nil
}

// Profile returns the account identified by userID, or common.ErrorNotFound.
func (s *UserService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies upd to the caller's account inside one transaction.
// Every rule is checked before the single write, so a rejected update
// leaves the account unchanged.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*models.User, error) {
	var updated *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		user, err := repo.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		if upd.Name != nil {
			user.Name = *upd.Name
		}

		if email := common.NormalizeEmail(deref(upd.Email)); email != "" && email != user.Email {
			other, err := repo.GetByEmail(ctx, email)
			switch {
			case err == nil && other.ID != user.ID:
				return common.ErrEmailInUse
			case err != nil && !errors.Is(err, common.ErrorNotFound):
				return err
			}
			user.Email = email
		}

		current, next := deref(upd.CurrentPassword), deref(upd.NewPassword)
		switch {
		case next != "":
			if current == "" {
				return common.ErrCurrentPasswordRequired
			}
			if !user.CheckPassword(current) {
				return common.ErrIncorrectCurrentPassword
			}
			if err := user.SetPassword(next, s.bcryptCost); err != nil {
				return fmt.Errorf("error hashing password: %w", err)
			}
		case current != "":
			return common.ErrNewPasswordRequired
		}

		if err := repo.Update(ctx, user); err != nil {
			if errors.Is(err, common.ErrorAlreadyExists) {
				return common.ErrEmailInUse
			}
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating profile: %w", err)
	}

	return updated, nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

var domainErrors = []error{
	common.ErrorNotFound,
	common.ErrEmailInUse,
	common.ErrCurrentPasswordRequired,
	common.ErrIncorrectCurrentPassword,
	common.ErrNewPasswordRequired,
}

func isDomainError(err error) bool {
	for _, e := range domainErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
