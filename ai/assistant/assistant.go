package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/utils"
	"github.com/sirupsen/logrus"
)

const (
	UnknownLocation   = "Unknown Location"
	PlaceNameFailed   = "Could not fetch place name"
	AnswerFailed      = "Sorry, I couldn't process that request. Please try again."
	DefaultTimeout    = 30 * time.Second
	answerTemperature = 0.2
)

var log = logrus.WithField("component", "ai")

// Generator is the model backend.
type Generator interface {
	GeneratePlace(ctx context.Context, prompt string) (string, error)
	GenerateAnswer(ctx context.Context, system, prompt string, temperature float32) (string, error)
}

// Assistant never returns model errors to callers; failures become
// placeholder text.
type Assistant struct {
	gen     Generator
	Timeout time.Duration
	Company string
	Now     func() time.Time
}

func New(gen Generator) *Assistant {
	return &Assistant{gen: gen, Timeout: DefaultTimeout, Company: "Raghavan Chaudhuri and Narayanan", Now: time.Now}
}

func (a *Assistant) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (a *Assistant) PlaceName(ctx context.Context, loc model.GeoLocation) string {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	prompt := fmt.Sprintf("Provide a short place name for latitude: %v, longitude: %v. Include city and country. For example: 'San Francisco, USA'.",
		loc.Latitude, loc.Longitude)
	place, err := a.gen.GeneratePlace(ctx, prompt)
	if err != nil {
		log.WithError(err).Warn("place name lookup failed")
		return PlaceNameFailed
	}
	if strings.TrimSpace(place) == "" {
		return UnknownLocation
	}
	return place
}

type SnapshotEmployee struct {
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

type SnapshotRecord struct {
	UserEmail string             `json:"userEmail"`
	Type      model.RecordType   `json:"type"`
	Timestamp string             `json:"timestamp"`
	Status    model.RecordStatus `json:"status"`
}

// Snapshot is the dataset handed to the model. Locations are left out.
type Snapshot struct {
	Employees []SnapshotEmployee `json:"employees"`
	Records   []SnapshotRecord   `json:"records"`
}

const isoLayout = "2006-01-02T15:04:05.000Z"

func NewSnapshot(employees []model.Employee, records []model.AttendanceRecord) Snapshot {
	return Snapshot{
		Employees: utils.Map(employees, func(e model.Employee) SnapshotEmployee {
			return SnapshotEmployee{Name: e.Name, Email: e.Email, Role: e.Role}
		}),
		Records: utils.Map(records, func(r model.AttendanceRecord) SnapshotRecord {
			return SnapshotRecord{
				UserEmail: r.UserEmail,
				Type:      r.Type,
				Timestamp: r.Time().UTC().Format(isoLayout),
				Status:    r.Status,
			}
		}),
	}
}

func (a *Assistant) systemInstruction() string {
	now := time.Now
	if a.Now != nil {
		now = a.Now
	}
	return fmt.Sprintf(`You are a helpful HR assistant for '%s'. Your task is to analyze the provided JSON data of employee attendance records to answer questions.
- The 'employees' array lists all employees.
- The 'records' array contains all clock-in/out events.
- 'status: pending' means a late clock-in requires manager approval.
- Today's date is %s.
- Base your answers strictly on the data provided.
- Be concise and clear. Format your answer for readability.
- If the data is insufficient to answer, say so.`, a.Company, now().Format("Mon Jan 02 2006"))
}

func BuildQuestion(question string, snapshot Snapshot) (string, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Question: %q\n\nJSON Data:\n%s", question, data), nil
}

// Ask answers a free-text question over the snapshot.
func (a *Assistant) Ask(ctx context.Context, question string, snapshot Snapshot) string {
	prompt, err := BuildQuestion(question, snapshot)
	if err != nil {
		log.WithError(err).Error("failed to encode snapshot")
		return AnswerFailed
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	answer, err := a.gen.GenerateAnswer(ctx, a.systemInstruction(), prompt, answerTemperature)
	if err != nil {
		log.WithError(err).Warn("ask failed")
		return AnswerFailed
	}
	return answer
}
