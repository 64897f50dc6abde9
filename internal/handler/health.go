package handler

import (
	"net/http"

	"eldercare-api/internal/api"

	"github.com/labstack/echo/v4"
)

// @Summary     Welcome message
// @Description Root endpoint returning a welcome message
// @Tags        health
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      / [get]
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Welcome to the ElderCare API"})
	}
}

// @Summary     Health check
// @Description Liveness probe, performs no data access
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Router      /health [get]
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.HealthResponse{Status: "healthy", Message: "Service is running"})
	}
}
