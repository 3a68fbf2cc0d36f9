package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/validation"
	"github.com/labstack/echo/v4"
)

// operation names a handler and the messages its failures render with.
type operation struct {
	name      string
	notFound  string
	forbidden string
	internal  string
	// listInternal renders internal errors as {"errors":[{"msg":...}]}.
	listInternal bool
}

var (
	opRegister      = operation{name: "register", internal: "Server error during registration", listInternal: true}
	opLogin         = operation{name: "login", internal: "Server error during login", listInternal: true}
	opProfile       = operation{name: "profile", notFound: "User not found", internal: "Server error"}
	opUpdateProfile = operation{name: "update_profile", notFound: "User not found", internal: "Server error while updating profile"}
	opCreateTask    = operation{name: "create_task", internal: "Server error while creating task"}
	opListTasks     = operation{name: "list_tasks", internal: "Server error while fetching tasks"}
	opGetTask       = operation{name: "get_task", notFound: "Task not found", forbidden: "Not authorized to access this task", internal: "Server error while fetching task"}
	opUpdateTask    = operation{name: "update_task", notFound: "Task not found", forbidden: "Not authorized to update this task", internal: "Server error while updating task"}
	opDeleteTask    = operation{name: "delete_task", notFound: "Task not found", forbidden: "Not authorized to delete this task", internal: "Server error while deleting task"}
)

const msgInvalidID = "Task not found (invalid ID format)"

// errorMessages are the 400 rejections rendered as {"errors":[{"msg":...}]}.
var errorMessages = map[error]string{
	common.ErrorAlreadyExists:          "User already exists",
	common.ErrInvalidCredentials:       "Invalid credentials",
	common.ErrEmailInUse:               "Email already in use by another account",
	common.ErrCurrentPasswordRequired:  "Current password is required to update password",
	common.ErrIncorrectCurrentPassword: "Incorrect current password",
	common.ErrNewPasswordRequired:      "New password is required when current password is provided for an update",
}

func msgBody(msg string) echo.Map {
	return echo.Map{"msg": msg}
}

func errorsBody(msg string) echo.Map {
	return echo.Map{"errors": []echo.Map{{"msg": msg}}}
}

// fail renders err for op. Unknown errors are logged and answered with a
// generic 500 so internals never leak.
func (s *Server) fail(c echo.Context, op operation, err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": verrs})
	}

	if errors.Is(err, common.ErrMalformedBody) {
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": []echo.Map{{"body": "Malformed JSON body"}}})
	}

	for e, msg := range errorMessages {
		if errors.Is(err, e) {
			return c.JSON(http.StatusBadRequest, errorsBody(msg))
		}
	}

	switch {
	case errors.Is(err, common.ErrInvalidID):
		return c.JSON(http.StatusNotFound, msgBody(msgInvalidID))
	case errors.Is(err, common.ErrorNotFound) && op.notFound != "":
		return c.JSON(http.StatusNotFound, msgBody(op.notFound))
	case errors.Is(err, common.ErrForbidden) && op.forbidden != "":
		return c.JSON(http.StatusUnauthorized, msgBody(op.forbidden))
	}

	s.logger.Error(c.Request().Context(), "request failed", "op", op.name, "error", err.Error())
	if op.listInternal {
		return c.JSON(http.StatusInternalServerError, errorsBody(op.internal))
	}
	return c.JSON(http.StatusInternalServerError, msgBody(op.internal))
}

// httpErrorHandler renders errors that escape handlers, including router
// misses. Unmatched paths and methods both answer 404 {"error":"Not Found"}.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	if code == http.StatusMethodNotAllowed {
		code = http.StatusNotFound
	}
	if code == http.StatusInternalServerError {
		s.logger.Error(c.Request().Context(), "unhandled error", "error", err.Error())
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, echo.Map{"error": http.StatusText(code)})
	}
	if werr != nil {
		s.logger.Error(c.Request().Context(), "error writing error response", "error", werr.Error())
	}
}
