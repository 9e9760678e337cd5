// Package bootstrap turns a loaded Config into wired services. The HTTP
// server, the pending-digest lambda and the token CLI all start here.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rachitshetty07/Attendance-RCN/ai/assistant"
	"github.com/rachitshetty07/Attendance-RCN/attendance/core"
	"github.com/rachitshetty07/Attendance-RCN/config"
	dbcore "github.com/rachitshetty07/Attendance-RCN/core"
	"github.com/rachitshetty07/Attendance-RCN/infrastructure/communication"
	"github.com/rachitshetty07/Attendance-RCN/infrastructure/email"
	"github.com/rachitshetty07/Attendance-RCN/infrastructure/filesystem"
	"github.com/rachitshetty07/Attendance-RCN/store"
	"github.com/sirupsen/logrus"
)

// SetupLogging applies LOG_LEVEL and LOG_FORMAT to the standard logrus logger.
func SetupLogging(cfg *config.Config) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.WithError(err).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stdout)
	if strings.EqualFold(cfg.LogFormat, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// OpenStore opens the configured blob backend. The returned close func is
// never nil.
func OpenStore(ctx context.Context, cfg *config.Config) (store.BlobStore, func(), error) {
	noop := func() {}
	switch cfg.StoreBackend {
	case config.StoreSQL:
		dm, err := dbcore.New(cfg.DSN, config.MaxDBConnections(), dbcore.ParseLogLevel(cfg.DBLogLevel))
		if err != nil {
			return nil, noop, err
		}
		blobs, err := store.NewGormStore(dm.DB)
		if err != nil {
			dm.Close()
			return nil, noop, err
		}
		return blobs, func() { dm.Close() }, nil
	case config.StoreS3:
		fs, err := filesystem.ConnectS3(ctx, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, noop, err
		}
		return store.NewS3Store(fs), noop, nil
	case config.StoreMemory:
		logrus.Warn("using the in-memory store, data is lost on restart")
		return store.NewMemoryStore(), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// NewSlack returns nil when no bot token is configured.
func NewSlack(cfg *config.Config) *communication.Slack {
	if cfg.SlackBotToken == "" {
		return nil
	}
	s := communication.NewSlack(cfg.SlackBotToken, communication.SlackOption{
		InfoChannelID:  cfg.SlackInfoChannel,
		ErrorChannelID: cfg.SlackErrorChannel,
	})
	s.Location = cfg.Location
	return s
}

type App struct {
	Config    *config.Config
	Roster    *core.Roster
	Records   *store.RecordStore
	Sessions  *core.SessionService
	Clock     *core.ClockService
	Approvals *core.ApprovalService
	Shares    *core.ShareService
	Reports   *core.ReportService

	// Optional integrations, nil when not configured.
	Assistant *assistant.Assistant
	Slack     *communication.Slack
	Mailer    *email.Mailer

	Close func()
}

// New loads the roster, opens the store and wires every service.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	roster, err := core.LoadRoster(cfg.RosterPath)
	if err != nil {
		return nil, err
	}
	logrus.WithField("employees", len(roster.All())).WithField("path", cfg.RosterPath).Info("roster loaded")

	blobs, closeStore, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, Roster: roster, Close: closeStore}
	app.Records = store.NewRecordStore(blobs)
	app.Sessions = &core.SessionService{
		Roster:   roster,
		Sessions: store.NewSessionStore(blobs),
		Secret:   cfg.SessionSecret,
		TTL:      cfg.SessionTTL,
	}
	app.Shares = &core.ShareService{Shares: store.NewShareStore(blobs), BaseURL: cfg.PublicBaseURL}
	app.Reports = &core.ReportService{Roster: roster, Records: app.Records, Shares: app.Shares, Location: cfg.Location}
	app.Approvals = &core.ApprovalService{Records: app.Records}
	app.Clock = &core.ClockService{Records: app.Records, Rules: cfg.Rules(), GeoTimeout: cfg.GeoTimeout}

	if cfg.GeminiAPIKey != "" {
		app.Assistant = assistant.New(assistant.NewGenkitGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel))
		app.Assistant.Timeout = cfg.AITimeout
		app.Clock.Places = app.Assistant
	} else {
		logrus.Warn("GEMINI_API_KEY not set, place names and the assistant are disabled")
	}

	if app.Slack = NewSlack(cfg); app.Slack != nil {
		app.Clock.Notifier = app.Slack
	}

	if cfg.EmailFrom != "" {
		if app.Mailer, err = email.ConnectSES(ctx, cfg.EmailFrom); err != nil {
			app.Close()
			return nil, err
		}
	}

	return app, nil
}
