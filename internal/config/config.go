package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// SessionStorageKey names the browser-era storage slot for draft form
// data. Nothing reads it back yet; it is kept so a future draft-restore
// feature lands under the same key the web console used.
const SessionStorageKey = "edtronaut-form-data"

const (
	defaultBaseURL     = "https://jsonplaceholder.typicode.com"
	defaultPageSize    = 5
	defaultDebounceMS  = 300
	defaultHTTPTimeout = 10000
)

// Config carries everything the client programs need to talk to the
// remote collection and drive the UI.
type Config struct {
	APIBaseURL  string
	PageSize    int
	Debounce    time.Duration
	HTTPTimeout time.Duration
	LogFile     string
}

// Load reads a .env file when present and falls back to built-in
// defaults for anything unset.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		APIBaseURL:  envString("USERDECK_API_BASE_URL", defaultBaseURL),
		PageSize:    envInt("USERDECK_PAGE_SIZE", defaultPageSize),
		Debounce:    time.Duration(envInt("USERDECK_DEBOUNCE_MS", defaultDebounceMS)) * time.Millisecond,
		HTTPTimeout: time.Duration(envInt("USERDECK_HTTP_TIMEOUT_MS", defaultHTTPTimeout)) * time.Millisecond,
		LogFile:     envString("USERDECK_LOG_FILE", ""),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
