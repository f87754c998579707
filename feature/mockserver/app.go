package mockserver

import (
	"errors"
	"fmt"

	"badger-probe/core/loader"
	"badger-probe/core/logger"
	"badger-probe/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// BasePath is the prefix of every mock API route.
const BasePath = "/api/2"

// Endpoints lists the routes served under BasePath, for the startup log.
var Endpoints = []string{
	"GET   /profile/",
	"GET   /customers/",
	"GET   /customers/{id}/",
	"PATCH /customers/{id}/",
	"GET   /appointments/",
	"POST  /appointments/",
	"GET   /routes/",
	"GET   /routes/{id}/",
	"GET   /search/users/",
	"GET   /datafields/",
}

// NewApp builds the mock API server on top of src.
func NewApp(src Source, log *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})

	// RayID first so every log line can carry it
	app.Use(rayid.New())
	app.Use(requestLogger(log))
	app.Use(allowCORS)

	mgr := loader.NewManager()
	mgr.Register(NewFeatures(NewHandler(NewService(src, log)))...)
	if err := mgr.LoadAll(app.Group(BasePath)); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(mgr.Features()))
	for _, f := range mgr.Features() {
		if f.IsEnabled() {
			names = append(names, f.Name())
		}
	}
	log.Info("Features loaded", zap.Strings("features", names))

	app.Use(notFound)

	return app, nil
}

func requestLogger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(log, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Warn("Request error", zap.Error(err))
		}
		return err
	}
}

// allowCORS opens the API to any origin and answers preflight requests directly.
func allowCORS(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, PATCH, PUT, DELETE, OPTIONS")
	c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")

	if c.Method() == fiber.MethodOptions {
		return c.SendStatus(fiber.StatusOK)
	}
	return c.Next()
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(errorBody(fiber.StatusNotFound, fmt.Sprintf("Endpoint %s not found", c.Path())))
}

func errorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}
		if code >= fiber.StatusInternalServerError {
			logger.WithRayID(log, c).Error("Request failed", zap.Error(err))
		}
		return c.Status(code).JSON(errorBody(code, err.Error()))
	}
}

func errorBody(code int, message string) fiber.Map {
	return fiber.Map{
		"error":       fiberutils.StatusMessage(code),
		"message":     message,
		"status_code": code,
	}
}
