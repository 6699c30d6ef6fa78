package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Expected port 3000, got %d", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Expected postgres driver, got %q", cfg.Database.Driver)
	}
	if cfg.Database.ConnMaxLifetime != time.Hour {
		t.Errorf("Expected 1h conn lifetime, got %v", cfg.Database.ConnMaxLifetime)
	}
	if !cfg.Database.AutoMigrate || !cfg.Metrics.Enabled || !cfg.WS.Enabled {
		t.Errorf("Expected auto_migrate, metrics and ws on by default: %+v", cfg)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("Expected /metrics, got %q", cfg.Metrics.Path)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("PORT", "8081")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Database.Driver != "mysql" {
		t.Errorf("Expected mysql driver, got %q", cfg.Database.Driver)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Expected host from DB_HOST, got %q", cfg.Database.Host)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("Expected port from PORT, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected debug level, got %q", cfg.Log.Level)
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("Expected 3s shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Addr() != ":8081" {
		t.Errorf("Expected :8081, got %q", cfg.Addr())
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "oracle")
	if _, err := Load(); err == nil {
		t.Fatal("Expected error for unknown driver")
	}
}
