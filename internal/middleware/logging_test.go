package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupLoggedApp() (*fiber.App, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := fiber.New()
	app.Use(RequestID())
	app.Use(Logger(zap.New(core)))
	app.Use(Metrics())
	app.Get("/ok", func(c *fiber.Ctx) error {
		FromCtx(c, zap.NewNop()).Info("inside handler")
		return c.SendString("ok")
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})
	return app, logs
}

func TestLoggerTagsRequestID(t *testing.T) {
	app, logs := setupLoggedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	requestID := resp.Header.Get(fiber.HeaderXRequestID)
	if requestID == "" {
		t.Fatal("Expected X-Request-ID header")
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 log entries, got %d", len(entries))
	}
	for _, entry := range entries {
		if entry.ContextMap()["request_id"] != requestID {
			t.Errorf("Entry %q missing request_id %s: %v", entry.Message, requestID, entry.ContextMap())
		}
	}
	if entries[1].Message != "HTTP request completed" || entries[1].ContextMap()["status"] != int64(200) {
		t.Errorf("Unexpected access log: %s %v", entries[1].Message, entries[1].ContextMap())
	}
}

func TestLoggerRendersHandlerErrors(t *testing.T) {
	app, logs := setupLoggedApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/boom", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", resp.StatusCode)
	}

	failed := logs.FilterMessage("HTTP request failed").All()
	if len(failed) != 1 {
		t.Fatalf("Expected one failure entry, got %d", len(failed))
	}
	if failed[0].Level != zapcore.ErrorLevel {
		t.Errorf("Expected error level, got %s", failed[0].Level)
	}
}

func TestFromCtxFallback(t *testing.T) {
	app := fiber.New()
	fallback := zap.NewNop()
	var got *zap.Logger
	app.Get("/", func(c *fiber.Ctx) error {
		got = FromCtx(c, fallback)
		return nil
	})
	if _, err := app.Test(httptest.NewRequest("GET", "/", nil)); err != nil {
		t.Fatalf("request: %v", err)
	}
	if got != fallback {
		t.Error("Expected fallback logger when none is stored")
	}
}
