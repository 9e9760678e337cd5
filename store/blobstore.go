package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("blob not found")

const (
	KeyAttendanceRecords = "allAttendanceRecords"
	KeySharedReports     = "sharedReports"
	KeySessionPrefix     = "currentUserEmail/"
)

// BlobStore is a string-keyed store of opaque values. Put replaces the whole value.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
