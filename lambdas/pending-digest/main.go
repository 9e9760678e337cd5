package main

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rachitshetty07/Attendance-RCN/attendance/bootstrap"
	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/config"
	"github.com/rachitshetty07/Attendance-RCN/store"
	"github.com/rachitshetty07/Attendance-RCN/utils"
	"github.com/sirupsen/logrus"
)

type DigestEvent struct {
	DryRun bool `json:"dryRun"`
}

type DigestResult struct {
	Pending int    `json:"pending"`
	Sent    bool   `json:"sent"`
	Message string `json:"message"`
}

// DigestSender renders and posts the digest.
type DigestSender interface {
	PendingDigest(records []model.AttendanceRecord) string
	SendPendingDigest(ctx context.Context, records []model.AttendanceRecord) error
}

// SendDigest posts every pending record, oldest first, unless dryRun is set.
func SendDigest(ctx context.Context, records *store.RecordStore, sender DigestSender, dryRun bool) (DigestResult, error) {
	pending := utils.Filter(records.All(ctx), func(r model.AttendanceRecord) bool { return r.IsPending() })
	slices.SortFunc(pending, func(a, b model.AttendanceRecord) int {
		if c := cmp.Compare(a.Timestamp, b.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	res := DigestResult{Pending: len(pending), Message: sender.PendingDigest(pending)}
	if dryRun {
		return res, nil
	}
	if err := sender.SendPendingDigest(ctx, pending); err != nil {
		return res, fmt.Errorf("failed to post digest: %w", err)
	}
	res.Sent = true
	return res, nil
}

func run(ctx context.Context, dryRun bool) (DigestResult, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return DigestResult{}, err
	}
	bootstrap.SetupLogging(cfg)

	slack := bootstrap.NewSlack(cfg)
	if slack == nil {
		return DigestResult{}, fmt.Errorf("SLACK_BOT_TOKEN is required")
	}

	blobs, closeStore, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return DigestResult{}, err
	}
	defer closeStore()

	res, err := SendDigest(ctx, store.NewRecordStore(blobs), slack, dryRun)
	if err != nil {
		if notifyErr := slack.Error(ctx, err.Error()); notifyErr != nil {
			logrus.WithError(notifyErr).Warn("failed to report digest error")
		}
		return res, err
	}
	logrus.WithField("pending", res.Pending).WithField("sent", res.Sent).Info("pending digest finished")
	return res, nil
}

func HandleRequest(ctx context.Context, event DigestEvent) (DigestResult, error) {
	return run(ctx, event.DryRun)
}

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(HandleRequest)
		return
	}

	res, err := run(context.Background(), os.Getenv("DRY_RUN") != "false")
	if err != nil {
		logrus.WithError(err).Error("pending digest failed")
		os.Exit(1)
	}
	resJson, _ := json.MarshalIndent(res, "", "  ")
	fmt.Println(string(resJson))
}
