package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	// Loads a .env file into the process environment before Load runs.
	_ "github.com/joho/godotenv/autoload"
)

// AppConfig holds environment driven configuration values.
// Credentials must come from the environment or config file, never from code.
type AppConfig struct {
	AppPort string

	// Database connection: DatabaseURI wins when set, otherwise the DSN is
	// assembled from the individual fields.
	DatabaseURI string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	RateLimitPerMinute int
	AllowedOrigins     []string

	// Gin framework configuration
	GinMode string

	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
}

var cfg AppConfig
var loaded bool

// Load loads the application configuration. It should be called once during boot.
// Precedence: config/config.json -> defaults -> environment variable overrides.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	_ = loadJSONConfig(filepath.Join("config", "config.json"), &cfg)
	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// loadJSONConfig reads a JSON file into cfg if present. A missing file is not
// an error; invalid JSON is.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var raw map[string]any
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return err
	}

	getString := func(m map[string]any, key string) string {
		if s, ok := m[key].(string); ok {
			return s
		}
		return ""
	}
	getInt := func(m map[string]any, key string) int {
		switch t := m[key].(type) {
		case float64:
			return int(t)
		case int:
			return t
		}
		return 0
	}
	getBool := func(m map[string]any, key string) bool {
		if b, ok := m[key].(bool); ok {
			return b
		}
		return false
	}
	getStringSlice := func(m map[string]any, key string) []string {
		arr, ok := m[key].([]any)
		if !ok {
			return nil
		}
		res := make([]string, 0, len(arr))
		for _, it := range arr {
			if s, ok := it.(string); ok {
				res = append(res, s)
			}
		}
		return res
	}

	if app, ok := raw["app"].(map[string]any); ok {
		out.AppPort = getString(app, "AppPort")
		if v := getInt(app, "RateLimitPerMinute"); v != 0 {
			out.RateLimitPerMinute = v
		}
		if list := getStringSlice(app, "AllowedOrigins"); len(list) > 0 {
			out.AllowedOrigins = list
		}
	}

	if g, ok := raw["gin"].(map[string]any); ok {
		if v := getString(g, "Mode"); v != "" {
			out.GinMode = v
		}
	}

	if dbs, ok := raw["database"].(map[string]any); ok {
		out.DatabaseURI = getString(dbs, "DatabaseURI")
		out.DBHost = getString(dbs, "DBHost")
		out.DBPort = getString(dbs, "DBPort")
		out.DBUser = getString(dbs, "DBUser")
		out.DBPassword = getString(dbs, "DBPassword")
		out.DBName = getString(dbs, "DBName")
	}

	if lg, ok := raw["log"].(map[string]any); ok {
		out.LogLevel = getString(lg, "Level")
		out.LogPath = getString(lg, "Path")
		if v := getInt(lg, "MaxSizeMB"); v != 0 {
			out.LogMaxSizeMB = v
		}
		if v := getInt(lg, "MaxBackups"); v != 0 {
			out.LogMaxBackups = v
		}
		if v := getInt(lg, "MaxAgeDays"); v != 0 {
			out.LogMaxAgeDays = v
		}
		out.LogCompress = getBool(lg, "Compress")
	}

	return nil
}

func applyDefaults(out *AppConfig) {
	if out.AppPort == "" {
		out.AppPort = "8000"
	}
	if out.DBHost == "" {
		out.DBHost = "127.0.0.1"
	}
	if out.DBPort == "" {
		out.DBPort = "3306"
	}
	if out.DBUser == "" {
		out.DBUser = "root"
	}
	if out.DBName == "" {
		out.DBName = "miniblog"
	}
	if out.RateLimitPerMinute == 0 {
		out.RateLimitPerMinute = 120
	}
	if len(out.AllowedOrigins) == 0 {
		out.AllowedOrigins = []string{"*"}
	}
	if out.GinMode == "" {
		out.GinMode = "release"
	}
	if out.LogLevel == "" {
		out.LogLevel = "info"
	}
	if out.LogPath == "" {
		out.LogPath = "logs/miniblog.log"
	}
}

func applyEnvOverrides(out *AppConfig) {
	setString := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setInt := func(dst *int, key string) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	setString(&out.AppPort, "APP_PORT")
	setString(&out.DatabaseURI, "DATABASE_URI")
	setString(&out.DBHost, "DB_HOST")
	setString(&out.DBPort, "DB_PORT")
	setString(&out.DBUser, "DB_USER")
	setString(&out.DBPassword, "DB_PASSWORD")
	setString(&out.DBName, "DB_NAME")
	setInt(&out.RateLimitPerMinute, "RATE_LIMIT_PER_MINUTE")
	setString(&out.GinMode, "GIN_MODE")
	setString(&out.LogLevel, "LOG_LEVEL")
	setString(&out.LogPath, "LOG_PATH")
	setInt(&out.LogMaxSizeMB, "LOG_MAX_SIZE_MB")
	setInt(&out.LogMaxBackups, "LOG_MAX_BACKUPS")
	setInt(&out.LogMaxAgeDays, "LOG_MAX_AGE_DAYS")

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				origins = append(origins, s)
			}
		}
		if len(origins) > 0 {
			out.AllowedOrigins = origins
		}
	}
	if v := os.Getenv("LOG_COMPRESS"); v != "" {
		out.LogCompress = v == "true" || v == "1"
	}
}
