package logging

import (
	"os"
	"strings"

	"faepa_workflow/internal/infrastructure/config"

	log "github.com/sirupsen/logrus"
)

// Setup configures the process-wide logrus logger. Unknown levels fall back to info.
func Setup(cfg config.LogConfig) {
	log.SetOutput(os.Stdout)

	if strings.EqualFold(strings.TrimSpace(cfg.Format), "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	level, err := log.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
