package logging

import (
	"testing"

	"faepa_workflow/internal/infrastructure/config"

	log "github.com/sirupsen/logrus"
)

func TestSetup(t *testing.T) {
	defer Setup(config.LogConfig{Level: "info"})

	Setup(config.LogConfig{Level: "debug", Format: "json"})
	if log.GetLevel() != log.DebugLevel {
		t.Fatalf("expected debug level, got %s", log.GetLevel())
	}
	if _, ok := log.StandardLogger().Formatter.(*log.JSONFormatter); !ok {
		t.Fatalf("expected json formatter")
	}

	Setup(config.LogConfig{Level: "loud"})
	if log.GetLevel() != log.InfoLevel {
		t.Fatalf("expected info fallback, got %s", log.GetLevel())
	}
	if _, ok := log.StandardLogger().Formatter.(*log.TextFormatter); !ok {
		t.Fatalf("expected text formatter")
	}
}
