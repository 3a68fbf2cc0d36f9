package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// guardMessages maps each guard failure to its response text.
var guardMessages = map[error]string{
	common.ErrTokenMissing:   "No token, authorization denied",
	common.ErrTokenBadFormat: "Token is not in Bearer format",
	common.ErrTokenExpired:   "Token is expired",
	common.ErrInvalidToken:   "Token is not valid",
}

func guardMessage(err error) string {
	for e, msg := range guardMessages {
		if errors.Is(err, e) {
			return msg
		}
	}
	return guardMessages[common.ErrInvalidToken]
}

// requireAuth verifies the bearer token and stores the user id in the
// request context. Requests without a valid token never reach next.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		token, err := auth.TokenFromHeader(req.Header.Get(common.AuthorizationHeaderName))
		var userID string
		if err == nil {
			userID, err = s.tokens.Verify(token)
		}
		if err != nil {
			s.logger.Debug(req.Context(), "request rejected by guard", "path", req.URL.Path, "reason", err.Error())
			return c.JSON(http.StatusUnauthorized, msgBody(guardMessage(err)))
		}

		c.SetRequest(req.WithContext(auth.WithUserID(req.Context(), userID)))
		return next(c)
	}
}

// userID returns the id attached by requireAuth.
func userID(c echo.Context) string {
	id, _ := auth.UserIDFromContext(c.Request().Context())
	return id
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Info(c.Request().Context(), "request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
				"remote_ip", v.RemoteIP,
			)
			return nil
		},
	})
}
