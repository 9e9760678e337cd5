package core

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
	"github.com/rachitshetty07/Attendance-RCN/store"
)

// ShareService issues opaque tokens that resolve to one employee's month.
// Tokens never expire and cannot be revoked.
type ShareService struct {
	Shares  *store.ShareStore
	BaseURL string
}

func (s *ShareService) Create(ctx context.Context, email string, period model.Period) (string, error) {
	token := uuid.NewString()
	report := model.SharedReport{
		UserEmail: model.NormalizeEmail(email),
		Month:     period.Month,
		Year:      period.Year,
	}
	if err := s.Shares.Put(ctx, token, report); err != nil {
		return "", err
	}
	log.WithField("user", report.UserEmail).WithField("period", period.String()).Info("report shared")
	return token, nil
}

func (s *ShareService) Resolve(ctx context.Context, token string) (model.SharedReport, error) {
	if _, err := uuid.Parse(token); err != nil {
		return model.SharedReport{}, ErrMalformedToken
	}
	report, ok := s.Shares.Get(ctx, token)
	if !ok {
		return model.SharedReport{}, ErrTokenNotFound
	}
	return report, nil
}

// URL renders the addressable link, e.g. https://host/#/share/<token>.
func (s *ShareService) URL(token string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/#/share/" + token
}
