package config

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rachitshetty07/Attendance-RCN/attendance/core"
	"github.com/rachitshetty07/Attendance-RCN/attendance/geo"
	"github.com/rachitshetty07/Attendance-RCN/infrastructure/devops"
	"github.com/rachitshetty07/Attendance-RCN/utils"
	"github.com/sirupsen/logrus"
)

type StoreBackend string

const (
	StoreMemory StoreBackend = "memory"
	StoreSQL    StoreBackend = "sql"
	StoreS3     StoreBackend = "s3"
)

type Config struct {
	Addr          string
	PublicBaseURL string

	StoreBackend StoreBackend
	DSN          string
	DBLogLevel   string
	S3Bucket     string
	S3Prefix     string

	SessionSecret []byte
	SessionTTL    time.Duration
	RosterPath    string

	Location      *time.Location
	ClockInStart  time.Duration
	ClockInEnd    time.Duration
	ClockOutAfter time.Duration
	GeoTimeout    time.Duration

	GeminiAPIKey string
	GeminiModel  string
	AITimeout    time.Duration

	SlackBotToken     string
	SlackInfoChannel  string
	SlackErrorChannel string
	EmailFrom         string

	LogLevel  string
	LogFormat string
}

func (c *Config) Rules() core.Rules {
	return core.Rules{
		ClockInStart:  c.ClockInStart,
		ClockInEnd:    c.ClockInEnd,
		ClockOutAfter: c.ClockOutAfter,
		Location:      c.Location,
	}
}

// env resolves a key from the process environment first, then from the
// optional SSM overlay.
type env struct {
	overlay map[string]string
	errs    []string
}

func (e *env) getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	if value, exists := e.overlay[key]; exists {
		return value
	}
	return defaultVal
}

func (e *env) getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	valStr := e.getEnv(key, "")
	if valStr == "" {
		return defaultVal
	}
	val, err := time.ParseDuration(valStr)
	if err != nil {
		e.errs = append(e.errs, fmt.Sprintf("%s: %v", key, err))
		return defaultVal
	}
	return val
}

func (e *env) getEnvAsClock(key string, defaultVal time.Duration) time.Duration {
	valStr := e.getEnv(key, "")
	if valStr == "" {
		return defaultVal
	}
	val, err := utils.ParseClock(valStr)
	if err != nil {
		e.errs = append(e.errs, fmt.Sprintf("%s: %v", key, err))
		return defaultVal
	}
	return val
}

func (e *env) getEnvAsInt(key string, defaultVal int) int {
	valStr := e.getEnv(key, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return val
	}
	return defaultVal
}

// Load reads .env (if present), then the environment, then the SSM
// parameter named by CONFIG_SSM_PARAMETER for anything still unset.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("failed to read .env")
	}

	e := &env{}
	if param := os.Getenv("CONFIG_SSM_PARAMETER"); param != "" {
		overlay, err := devops.LoadSettings(ctx, param)
		if err != nil {
			return nil, fmt.Errorf("load ssm settings: %w", err)
		}
		e.overlay = overlay
	}
	return load(e)
}

func load(e *env) (*Config, error) {
	cfg := &Config{
		Addr:          e.getEnv("ADDR", "0.0.0.0:8090"),
		PublicBaseURL: e.getEnv("PUBLIC_BASE_URL", "http://localhost:8090"),

		StoreBackend: StoreBackend(strings.ToLower(e.getEnv("STORE_BACKEND", string(StoreMemory)))),
		DSN:          e.getEnv("DSN", ""),
		DBLogLevel:   e.getEnv("DB_LOG_LEVEL", "error"),
		S3Bucket:     e.getEnv("S3_BUCKET", ""),
		S3Prefix:     e.getEnv("S3_PREFIX", "attendance"),

		SessionTTL: e.getEnvAsDuration("SESSION_TTL", core.DefaultSessionTTL),
		RosterPath: e.getEnv("ROSTER_PATH", "employees.yaml"),

		ClockInStart:  e.getEnvAsClock("CLOCK_IN_START", core.DefaultClockInStart),
		ClockInEnd:    e.getEnvAsClock("CLOCK_IN_END", core.DefaultClockInEnd),
		ClockOutAfter: e.getEnvAsClock("CLOCK_OUT_AFTER", core.DefaultClockOutAfter),
		GeoTimeout:    e.getEnvAsDuration("GEO_TIMEOUT", geo.DefaultTimeout),

		GeminiAPIKey: e.getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  e.getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		AITimeout:    e.getEnvAsDuration("AI_TIMEOUT", 30*time.Second),

		SlackBotToken:     e.getEnv("SLACK_BOT_TOKEN", ""),
		SlackInfoChannel:  e.getEnv("SLACK_INFO_CHANNEL", ""),
		SlackErrorChannel: e.getEnv("SLACK_ERROR_CHANNEL", ""),
		EmailFrom:         e.getEnv("EMAIL_FROM", ""),

		LogLevel:  e.getEnv("LOG_LEVEL", "info"),
		LogFormat: e.getEnv("LOG_FORMAT", "text"),
	}

	loc, err := utils.LoadLocation(e.getEnv("TIMEZONE", "Asia/Kolkata"))
	if err != nil {
		e.errs = append(e.errs, err.Error())
	}
	cfg.Location = loc

	secret := e.getEnv("SESSION_SECRET", "")
	if secret == "" {
		e.errs = append(e.errs, "SESSION_SECRET is required")
	} else if cfg.SessionSecret, err = base64.StdEncoding.DecodeString(secret); err != nil {
		e.errs = append(e.errs, fmt.Sprintf("SESSION_SECRET must be base64: %v", err))
	}

	switch cfg.StoreBackend {
	case StoreMemory:
	case StoreSQL:
		if cfg.DSN == "" {
			e.errs = append(e.errs, "DSN is required for the sql store")
		}
	case StoreS3:
		if cfg.S3Bucket == "" {
			e.errs = append(e.errs, "S3_BUCKET is required for the s3 store")
		}
	default:
		e.errs = append(e.errs, fmt.Sprintf("unknown STORE_BACKEND %q", cfg.StoreBackend))
	}

	if cfg.ClockInStart > cfg.ClockInEnd {
		e.errs = append(e.errs, "CLOCK_IN_START must not be after CLOCK_IN_END")
	}

	if len(e.errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(e.errs, "; "))
	}
	return cfg, nil
}

// MaxDBConnections is read separately so lambdas can run with fewer.
func MaxDBConnections() int {
	e := &env{}
	return e.getEnvAsInt("DB_MAX_CONNECTIONS", 10)
}
