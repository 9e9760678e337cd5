package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rachitshetty07/Attendance-RCN/ai/assistant"
	"github.com/rachitshetty07/Attendance-RCN/attendance/bootstrap"
	"github.com/rachitshetty07/Attendance-RCN/config"
	"github.com/sirupsen/logrus"
)

// Asks the attendance assistant a question from the command line, e.g.
//
//	go run ./ai/cmd "Who clocked in late this week?"
func main() {
	question := strings.TrimSpace(strings.Join(os.Args[1:], " "))
	if question == "" {
		fmt.Fprintln(os.Stderr, "usage: ai/cmd <question>")
		os.Exit(2)
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}
	bootstrap.SetupLogging(cfg)
	logrus.SetOutput(os.Stderr)

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to start")
	}
	defer app.Close()

	if app.Assistant == nil {
		logrus.Fatal("GEMINI_API_KEY is required")
	}

	snapshot := assistant.NewSnapshot(app.Roster.All(), app.Records.All(ctx))
	fmt.Println(app.Assistant.Ask(ctx, question, snapshot))
}
