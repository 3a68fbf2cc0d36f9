package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:    "UP",
		Timestamp: s.now().UTC().Format(time.RFC3339Nano),
	})
}
