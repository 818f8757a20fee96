package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	LogLevel    string
	APIBaseURL  string
	SessionFile string
	PageSize    int
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	LogLevel = os.Getenv("LOG_LEVEL")
	if LogLevel == "" {
		LogLevel = "info"
	}

	APIBaseURL = os.Getenv("SWAP_API_URL")
	if APIBaseURL == "" {
		APIBaseURL = "http://localhost:5000/api"
	}

	SessionFile = os.Getenv("SESSION_FILE")
	if SessionFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			SessionFile = filepath.Join(home, ".swapcli", "session.json")
		} else {
			SessionFile = "session.json"
		}
	}

	PageSize = 10
	if raw := os.Getenv("PAGE_SIZE"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			PageSize = size
		}
	}
}
