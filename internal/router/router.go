// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"eldercare-api/internal/database"
	"eldercare-api/internal/handler"
	"eldercare-api/internal/handler/requests"
	"eldercare-api/internal/handler/users"
	"eldercare-api/internal/metrics"
)

// Setup registers all routes, injecting the two collections.
func Setup(e *echo.Echo, usersCol, requestsCol database.Collection, m *metrics.Metrics) {
	e.GET("/", handler.RootHandler())
	e.GET("/health", handler.HealthHandler())
	e.GET("/metrics", m.Handler())

	e.POST("/signup", users.SignupHandler(usersCol))
	e.POST("/login", users.LoginHandler(usersCol))

	e.POST("/service-request", requests.CreateServiceRequestHandler(requestsCol))
	e.GET("/service-requests/pending", requests.ListPendingRequestsHandler(requestsCol))
	e.PATCH("/service-request/:id/:action", requests.RequestActionHandler(requestsCol))
}
