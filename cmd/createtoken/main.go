package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rachitshetty07/Attendance-RCN/attendance/bootstrap"
	"github.com/rachitshetty07/Attendance-RCN/attendance/core"
	"github.com/rachitshetty07/Attendance-RCN/config"
	"github.com/rachitshetty07/Attendance-RCN/store"
	"github.com/sirupsen/logrus"
)

// Prints a session token for a roster email, for calling the API from curl.
// The session is stored in the configured backend so the server accepts it.
func main() {
	email := flag.String("email", "", "roster email to sign in as")
	flag.Parse()
	if *email == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	bootstrap.SetupLogging(cfg)
	logrus.SetOutput(os.Stderr)

	roster, err := core.LoadRoster(cfg.RosterPath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load roster")
	}
	blobs, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open store")
	}
	defer closeStore()

	sessions := &core.SessionService{
		Roster:   roster,
		Sessions: store.NewSessionStore(blobs),
		Secret:   cfg.SessionSecret,
		TTL:      cfg.SessionTTL,
	}
	session, token, err := sessions.Login(ctx, *email)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create token")
	}
	logrus.WithField("expiresAt", session.ExpiresAt).Info("token created")
	fmt.Println(token)
}
