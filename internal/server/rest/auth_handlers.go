package rest

import (
	"net/http"

	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
	"github.com/dmitrijs2005/taskkeeper/internal/server/validation"
	"github.com/labstack/echo/v4"
)

func (s *Server) register(c echo.Context) error {
	var req validation.RegisterRequest
	if err := bindRequest(c, &req); err != nil {
		return s.fail(c, opRegister, err)
	}

	user, token, err := s.users.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return s.fail(c, opRegister, err)
	}

	return c.JSON(http.StatusCreated, registerResponse{
		Token:   token,
		User:    newUserResponse(user),
		Message: "User registered successfully",
	})
}

func (s *Server) login(c echo.Context) error {
	var req validation.LoginRequest
	if err := bindRequest(c, &req); err != nil {
		return s.fail(c, opLogin, err)
	}

	token, err := s.users.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.fail(c, opLogin, err)
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) profile(c echo.Context) error {
	user, err := s.users.Profile(c.Request().Context(), userID(c))
	if err != nil {
		return s.fail(c, opProfile, err)
	}
	return c.JSON(http.StatusOK, newUserResponse(user))
}

func (s *Server) updateProfile(c echo.Context) error {
	var req validation.ProfileRequest
	if err := bindRequest(c, &req); err != nil {
		return s.fail(c, opUpdateProfile, err)
	}

	user, err := s.users.UpdateProfile(c.Request().Context(), userID(c), services.ProfileUpdate{
		Name:            req.Name,
		Email:           req.Email,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return s.fail(c, opUpdateProfile, err)
	}

	return c.JSON(http.StatusOK, newUserResponse(user))
}
