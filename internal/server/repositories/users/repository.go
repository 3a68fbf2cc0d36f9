// Package users provides repositories for account persistence.
package users

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Repository stores accounts. Create and Update return
// common.ErrorAlreadyExists when the email is taken; lookups return
// common.ErrorNotFound when no row matches.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}
