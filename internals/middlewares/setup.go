package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"frontdesk_backend/internals/configs"
	"frontdesk_backend/internals/metrics"
	"frontdesk_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the global chain. Order matters: recovery wraps
// everything, the request id exists before the access log reads it.
func SetupMiddlewares(app *fiber.App, cfg configs.AppConfig, log *zap.Logger) {
	app.Use(RecoveryMiddleware(log))
	app.Use(requestid.New())
	app.Use(logger.LoggerMiddleware(log))
	app.Use(metrics.Middleware())
	app.Use(CorsMiddleware(cfg.CorsOrigins))
	app.Use(GlobalRateLimiter())
	app.Use(RequestTimeout(cfg.RequestTimeout))

	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
}
