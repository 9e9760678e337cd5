package store

import (
	"context"
	"sync"

	"github.com/rachitshetty07/Attendance-RCN/attendance/model"
)

// ShareStore maps share tokens to report parameters. Tokens are never removed.
type ShareStore struct {
	blobs BlobStore
	mu    sync.Mutex
}

func NewShareStore(blobs BlobStore) *ShareStore {
	return &ShareStore{blobs: blobs}
}

func (s *ShareStore) Put(ctx context.Context, token string, report model.SharedReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := loadJSON[map[string]model.SharedReport](ctx, s.blobs, KeySharedReports)
	if err != nil {
		return err
	}
	if reports == nil {
		reports = make(map[string]model.SharedReport)
	}
	reports[token] = report
	return saveJSON(ctx, s.blobs, KeySharedReports, reports)
}

// Get reports whether token exists. A read failure is logged and treated
// as an unknown token.
func (s *ShareStore) Get(ctx context.Context, token string) (model.SharedReport, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reports, err := loadJSON[map[string]model.SharedReport](ctx, s.blobs, KeySharedReports)
	if err != nil {
		log.WithError(err).Error("failed to read shared reports")
		return model.SharedReport{}, false
	}
	report, ok := reports[token]
	return report, ok
}
