package validation

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	MsgEmail            = "Must be a valid email address"
	MsgPasswordLength   = "Password must be at least 6 characters long"
	MsgPasswordRequired = "Password is required"
	MsgNewPassword      = "New password must be at least 6 characters long"
	MsgTitleRequired    = "Title is required"
	MsgStatus           = "Invalid status. Must be pending, in-progress, or completed."
	MsgDueDate          = "Due date must be a valid date (YYYY-MM-DD)"
)

// MinPasswordLength applies to registration, login and new passwords.
const MinPasswordLength = 6

// dateLayouts are the accepted due date formats, tried in order.
var dateLayouts = []string{"2006-01-02", time.RFC3339Nano}

// ParseDate parses a due date in one of dateLayouts.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("invalid date")
}

var (
	email = []ozzo.Rule{
		ozzo.Required.Error(MsgEmail),
		is.EmailFormat.Error(MsgEmail),
	}
	optionalEmail = []ozzo.Rule{
		is.EmailFormat.Error(MsgEmail),
	}
	password = []ozzo.Rule{
		ozzo.Required.Error(MsgPasswordLength),
		ozzo.RuneLength(MinPasswordLength, 0).Error(MsgPasswordLength),
	}
	loginPassword = []ozzo.Rule{
		ozzo.Required.Error(MsgPasswordRequired),
		ozzo.RuneLength(MinPasswordLength, 0).Error(MsgPasswordLength),
	}
	newPassword = []ozzo.Rule{
		ozzo.RuneLength(MinPasswordLength, 0).Error(MsgNewPassword),
	}
	title = []ozzo.Rule{
		ozzo.Required.Error(MsgTitleRequired),
	}
	status = []ozzo.Rule{
		ozzo.NilOrNotEmpty.Error(MsgStatus),
		ozzo.In(statusValues()...).Error(MsgStatus),
	}
	dueDate = []ozzo.Rule{
		ozzo.By(func(value any) error {
			v, isNil := ozzo.Indirect(value)
			s, _ := v.(string)
			if isNil || s == "" {
				return nil
			}
			if _, err := ParseDate(s); err != nil {
				return ozzo.NewError("validation_due_date", MsgDueDate)
			}
			return nil
		}),
	}
)

func statusValues() []any {
	out := make([]any, 0, len(models.TaskStatuses))
	for _, s := range models.TaskStatuses {
		out = append(out, string(s))
	}
	return out
}
