package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDKey = "requestid"
	loggerKey    = "logger"
)

// RequestID tags every request with a UUID in X-Request-ID.
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	})
}

// Logger writes one structured line per request and stores a request
// scoped logger in c.Locals for handlers.
func Logger(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID, _ := c.Locals(requestIDKey).(string)
		reqLog := log.With(zap.String("request_id", requestID))
		c.Locals(loggerKey, reqLog)

		err := c.Next()
		if err != nil {
			// Let the app error handler write the response before logging the status
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}
		if err != nil {
			reqLog.Error("HTTP request failed", append(fields, zap.Error(err))...)
		} else {
			reqLog.Info("HTTP request completed", fields...)
		}
		return nil
	}
}

// FromCtx returns the request scoped logger, or fallback when none is set.
func FromCtx(c *fiber.Ctx, fallback *zap.Logger) *zap.Logger {
	if log, ok := c.Locals(loggerKey).(*zap.Logger); ok {
		return log
	}
	return fallback
}
