package users

import (
	"errors"
	"net/http"

	"eldercare-api/internal/api"
	"eldercare-api/internal/database"
	"eldercare-api/internal/model"
	"eldercare-api/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

var (
	createUser     = store.CreateUser
	getUserByEmail = store.GetUserByEmail
)

// @Summary     Sign up a new user
// @Description Creates an account unless the email is already registered
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.SignupRequest true "signup payload"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /signup [post]
func SignupHandler(users database.Collection) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SignupRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: err.Error()})
		}

		ctx := c.Request().Context()

		// Existence check first; not atomic with the insert below, so two
		// concurrent signups for the same email can both pass.
		_, err := getUserByEmail(ctx, users, req.Email)
		if err == nil {
			return c.JSON(http.StatusConflict, api.ErrorResponse{
				Detail: "Email already registered. Please use a different email or login to your existing account.",
			})
		}
		if !errors.Is(err, store.ErrNotFound) {
			logrus.WithError(err).Error("signup: user lookup failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Signup failed due to server error"})
		}

		if _, err := createUser(ctx, users, &model.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			DOB:      req.DOB,
			Role:     req.Role,
		}); err != nil {
			logrus.WithError(err).Error("signup: insert failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Signup failed due to server error"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Account created successfully!"})
	}
}

// @Summary     Log in a user
// @Description Verifies credentials and returns the user record without the password
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "login payload"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(users database.Collection) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Detail: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), users, req.Email)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Detail: "User not found. Please check your email or sign up."})
		}
		if err != nil {
			logrus.WithError(err).Error("login: user lookup failed")
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Detail: "Login failed due to server error"})
		}

		// Plain string comparison; passwords are stored verbatim.
		if user.Password != req.Password {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Detail: "Incorrect password. Please try again."})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			Message: "Login successful!",
			User: api.LoginUser{
				ID:    user.ID.Hex(),
				Name:  user.Name,
				Email: user.Email,
				Role:  user.Role,
				DOB:   user.DOB,
			},
		})
	}
}
