package validation

import (
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = common.NormalizeEmail(r.Email)
}

func (r *RegisterRequest) Validate() error {
	return Check(
		Field("email", r.Email, email...),
		Field("password", r.Password, password...),
	)
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Email = common.NormalizeEmail(r.Email)
}

func (r *LoginRequest) Validate() error {
	return Check(
		Field("email", r.Email, email...),
		Field("password", r.Password, loginPassword...),
	)
}

// ProfileRequest is the body of PUT /auth/me. Every field is optional.
type ProfileRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	CurrentPassword *string `json:"currentPassword"`
	NewPassword     *string `json:"newPassword"`
}

func (r *ProfileRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Email != nil {
		v := common.NormalizeEmail(*r.Email)
		r.Email = &v
	}
}

func (r *ProfileRequest) Validate() error {
	return Check(
		Field("email", r.Email, optionalEmail...),
		Field("newPassword", r.NewPassword, newPassword...),
	)
}

// TaskRequest is the body of POST /tasks and PUT /tasks/:id. Title is
// required on both; the other fields keep their current value when absent.
type TaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     *string `json:"dueDate"`
}

func (r *TaskRequest) Normalize() {
	if r.Title != nil {
		v := strings.TrimSpace(*r.Title)
		r.Title = &v
	}
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
	if r.DueDate != nil && strings.TrimSpace(*r.DueDate) == "" {
		r.DueDate = nil
	}
}

func (r *TaskRequest) Validate() error {
	return Check(
		Field("title", r.Title, title...),
		Field("status", r.Status, status...),
		Field("dueDate", r.DueDate, dueDate...),
	)
}

// Patch converts a validated request into a models.TaskPatch.
func (r *TaskRequest) Patch() models.TaskPatch {
	p := models.TaskPatch{Title: r.Title, Description: r.Description}
	if r.Status != nil {
		s := models.TaskStatus(*r.Status)
		p.Status = &s
	}
	if r.DueDate != nil {
		if d, err := ParseDate(*r.DueDate); err == nil {
			p.DueDate = &d
		}
	}
	return p
}
