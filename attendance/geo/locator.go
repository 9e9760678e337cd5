package geo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
)

const (
	AdvisoryDenied      = "Could not get location. Please enable permissions."
	AdvisoryUnsupported = "Geolocation is not supported."
	DefaultTimeout      = 10 * time.Second
)

var ErrUnavailable = errors.New("location unavailable")

// Locator produces the device position for a clock action.
type Locator interface {
	Locate(ctx context.Context) (model.GeoLocation, error)
}

// Reported is the position captured by the device and sent with the
// request, or the reason the device could not capture one.
type Reported struct {
	Position *model.GeoLocation
	Reason   string
}

func (r Reported) Locate(_ context.Context) (model.GeoLocation, error) {
	if r.Position == nil {
		if r.Reason != "" {
			return model.GeoLocation{}, fmt.Errorf("%w: %s", ErrUnavailable, r.Reason)
		}
		return model.GeoLocation{}, ErrUnavailable
	}
	p := *r.Position
	if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 || p.Accuracy < 0 {
		return model.GeoLocation{}, fmt.Errorf("%w: coordinates out of range", ErrUnavailable)
	}
	return p, nil
}

// Resolve asks l for a position within timeout. On failure it returns nil
// and the advisory to show the user.
func Resolve(ctx context.Context, l Locator, timeout time.Duration) (*model.GeoLocation, string) {
	if l == nil {
		return nil, AdvisoryUnsupported
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		pos model.GeoLocation
		err error
	}
	ch := make(chan result, 1)
	go func() {
		pos, err := l.Locate(ctx)
		ch <- result{pos: pos, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			return nil, AdvisoryDenied
		}
		return &res.pos, ""
	case <-ctx.Done():
		return nil, AdvisoryDenied
	}
}
