package handlers

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/observability"
	"github.com/lyonikaaisyah/Revisi-Aplikasi-Survey/internal/persistence"
)

func newHealthFixture(t *testing.T) *HealthHandler {
	t.Helper()
	db, err := persistence.OpenSQLite(filepath.Join(t.TempDir(), "survey.db"), 1, 1, time.Minute)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewHealthHandler("survey-api", "test", db, persistence.DriverSQLite, &persistence.Redis{}, observability.NewMetrics())
}

func TestReadyReportsReady(t *testing.T) {
	h := newHealthFixture(t)
	app := fiber.New()
	app.Get("/health/ready", h.Ready)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/ready", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	// An unconfigured redis is reported, not fatal.
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestReadyHonorsRequestContext(t *testing.T) {
	h := newHealthFixture(t)
	app := fiber.New()
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		c.SetUserContext(ctx)
		return h.Ready(c)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/health/ready", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	// The probes derive from the request context, so a canceled request
	// fails the database ping and flips readiness.
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.StatusCode)
	}
}
