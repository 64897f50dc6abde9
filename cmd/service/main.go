// @title        ElderCare API
// @version      1.0
// @description  API for elderly care management system
// @host         localhost:8000
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"eldercare-api/internal/config"
	"eldercare-api/internal/database"
	"eldercare-api/internal/metrics"
	"eldercare-api/internal/router"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	_ "eldercare-api/docs" // swag-generated docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newMongoClient = database.NewMongoClient
	startServer    = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc       = os.Exit
)

func run() error {
	cfg := config.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	client, err := newMongoClient(context.Background(), cfg.MongoURL)
	if err != nil {
		return fmt.Errorf("mongo connect failed: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logrus.WithError(err).Warn("mongo disconnect failed")
		}
	}()

	db := client.Database(cfg.DatabaseName)

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Permissive cross-origin policy for trusted deployments only.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch,
			http.MethodPost, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		UnsafeWildcardOriginWithAllowCredentials: true,
	}))

	m := metrics.New()
	e.Use(m.Middleware())

	router.Setup(e, db.Collection("users"), db.Collection("service_requests"), m)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, cfg.HTTPAddr)
}

func main() {
	if err := run(); err != nil {
		logrus.Error(err)
		exitFunc(1)
	}
}
