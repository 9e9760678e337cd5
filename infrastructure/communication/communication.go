package communication

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/slack-go/slack"
)

// Poster is the part of the slack client used here.
type Poster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

type Slack struct {
	client   Poster
	options  SlackOption
	Location *time.Location
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
}

func NewSlack(token string, options SlackOption) *Slack {
	return NewSlackWithClient(slack.New(token), options)
}

func NewSlackWithClient(client Poster, options SlackOption) *Slack {
	return &Slack{client: client, options: options, Location: time.Local}
}

func (s *Slack) postMessage(ctx context.Context, channelID, message string) error {
	_, _, err := s.client.PostMessageContext(ctx,
		channelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post message to Slack: %w", err)
	}
	return nil
}

func (s *Slack) Info(ctx context.Context, message string) error {
	return s.postMessage(ctx, s.options.InfoChannelID, message)
}

func (s *Slack) Error(ctx context.Context, message string) error {
	return s.postMessage(ctx, s.options.ErrorChannelID, message)
}

func (s *Slack) formatTime(rec model.AttendanceRecord) string {
	return rec.Time().In(s.Location).Format("Mon 02 Jan 15:04")
}

// NotifyPending tells managers a late clock-in is waiting for approval.
func (s *Slack) NotifyPending(ctx context.Context, employee model.Employee, rec model.AttendanceRecord) error {
	where := ""
	if rec.PlaceName != nil {
		where = " from " + *rec.PlaceName
	}
	return s.Info(ctx, fmt.Sprintf(":hourglass: %s (%s) clocked in late at %s%s. Approval required (record %d).",
		employee.Name, employee.Email, s.formatTime(rec), where, rec.ID))
}

// PendingDigest renders the daily list of records still awaiting approval.
func (s *Slack) PendingDigest(records []model.AttendanceRecord) string {
	if len(records) == 0 {
		return ":white_check_mark: No attendance records are waiting for approval."
	}
	var b strings.Builder
	fmt.Fprintf(&b, ":clipboard: %d attendance record(s) waiting for approval:\n", len(records))
	for _, rec := range records {
		fmt.Fprintf(&b, "• %s at %s (record %d)\n", rec.UserEmail, s.formatTime(rec), rec.ID)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (s *Slack) SendPendingDigest(ctx context.Context, records []model.AttendanceRecord) error {
	return s.Info(ctx, s.PendingDigest(records))
}
