package rest

import (
	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/labstack/echo/v4"
)

// request is a body that can normalize and validate itself.
type request interface {
	Normalize()
	Validate() error
}

var binder = &echo.DefaultBinder{}

// bindRequest decodes the JSON body into req, normalizes it and runs its
// rules. Undecodable bodies yield common.ErrMalformedBody.
func bindRequest(c echo.Context, req request) error {
	if err := binder.BindBody(c, req); err != nil {
		return common.ErrMalformedBody
	}
	req.Normalize()
	return req.Validate()
}
