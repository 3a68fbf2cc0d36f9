package services

import (
	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// AuthorizeOwner allows userID to act on task only when it owns the task.
func AuthorizeOwner(userID string, task *models.Task) error {
	if task == nil || userID == "" || task.UserID != userID {
		return common.ErrForbidden
	}
	return nil
}
