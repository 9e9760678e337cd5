package core

import (
	"cmp"
	"slices"
	"time"

	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/utils"
)

const (
	DefaultClockInStart  = 9*time.Hour + 30*time.Minute
	DefaultClockInEnd    = 11 * time.Hour
	DefaultClockOutAfter = 18 * time.Hour
)

// Rules holds the wall-clock thresholds, expressed as offsets from local
// midnight and compared at minute granularity.
type Rules struct {
	ClockInStart  time.Duration
	ClockInEnd    time.Duration
	ClockOutAfter time.Duration
	Location      *time.Location
}

func DefaultRules(loc *time.Location) Rules {
	if loc == nil {
		loc = time.Local
	}
	return Rules{
		ClockInStart:  DefaultClockInStart,
		ClockInEnd:    DefaultClockInEnd,
		ClockOutAfter: DefaultClockOutAfter,
		Location:      loc,
	}
}

func (r Rules) minuteOfDay(t time.Time) time.Duration {
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}
	return utils.MinuteOfDay(t.In(loc))
}

// IsClockInOnTime is inclusive at both ends.
func (r Rules) IsClockInOnTime(t time.Time) bool {
	m := r.minuteOfDay(t)
	return m >= r.ClockInStart && m <= r.ClockInEnd
}

func (r Rules) ClockInStatus(t time.Time) model.RecordStatus {
	return utils.FormatBoolean(r.IsClockInOnTime(t), model.StatusApproved, model.StatusPending)
}

func (r Rules) CanClockOut(t time.Time) bool {
	return r.minuteOfDay(t) >= r.ClockOutAfter
}

// Evaluate returns the status a new record of type typ gets at t.
// Clock-ins are always accepted; clock-outs before the threshold are not.
func (r Rules) Evaluate(typ model.RecordType, t time.Time) (model.RecordStatus, error) {
	switch typ {
	case model.RecordTypeIn:
		return r.ClockInStatus(t), nil
	case model.RecordTypeOut:
		if !r.CanClockOut(t) {
			return "", ErrClockOutNotAllowed
		}
		return model.StatusApproved, nil
	default:
		return "", ErrInvalidRecordType
	}
}

func compareRecords(a, b model.AttendanceRecord) int {
	if c := cmp.Compare(a.Timestamp, b.Timestamp); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// LatestRecord returns the most recent record, ties broken by id.
func LatestRecord(records []model.AttendanceRecord) *model.AttendanceRecord {
	if len(records) == 0 {
		return nil
	}
	latest := slices.MaxFunc(records, compareRecords)
	return &latest
}

// IsClockedIn reports whether the user's latest record is a clock-in.
// No records means clocked out.
func IsClockedIn(records []model.AttendanceRecord) bool {
	latest := LatestRecord(records)
	return latest != nil && latest.Type == model.RecordTypeIn
}
