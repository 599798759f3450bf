package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	BaseURL     string
	SessionDir  string
	HTTPTimeout time.Duration
)

func Init() {
	// .env is a dev convenience; absence is fine in deployed environments.
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}

	BaseURL = os.Getenv("BASE_API_URL")
	if BaseURL == "" {
		log.Fatal("BASE_API_URL not set")
	}

	SessionDir = os.Getenv("SESSION_DIR")
	if SessionDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("%v", err)
		}
		SessionDir = filepath.Join(home, ".themenu")
	}

	HTTPTimeout = 30 * time.Second
	if raw := os.Getenv("HTTP_TIMEOUT_SECONDS"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			log.Fatalf("invalid HTTP_TIMEOUT_SECONDS: %q", raw)
		}
		HTTPTimeout = time.Duration(secs) * time.Second
	}

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsed, err := logrus.ParseLevel(lvl)
		if err != nil {
			log.Fatalf("invalid LOG_LEVEL: %q", lvl)
		}
		logrus.SetLevel(parsed)
	}
}
