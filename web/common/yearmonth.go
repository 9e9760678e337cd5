package common

import (
	"encoding/json"
	"time"

	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
)

// YearMonth binds a "YYYY-MM" string. Empty means the current month.
type YearMonth struct {
	model.Period
	Set bool
}

func (y *YearMonth) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return y.UnmarshalText([]byte(s))
}

func (y *YearMonth) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*y = YearMonth{}
		return nil
	}
	p, err := model.ParsePeriod(string(b))
	if err != nil {
		return err
	}
	*y = YearMonth{Period: p, Set: true}
	return nil
}

func (y YearMonth) MarshalJSON() ([]byte, error) {
	if !y.Set {
		return json.Marshal("")
	}
	return json.Marshal(y.Period.String())
}

// OrCurrent falls back to the month containing now in loc.
func (y YearMonth) OrCurrent(now time.Time, loc *time.Location) model.Period {
	if y.Set {
		return y.Period
	}
	return model.PeriodOf(now.In(loc))
}

// UnmarshalParam lets gin bind the type from query and form values.
func (y *YearMonth) UnmarshalParam(param string) error {
	return y.UnmarshalText([]byte(param))
}
