package store

import (
	"bytes"
	"context"
	"errors"

	"github.com/rachitshetty07/Attendance-RCN/infrastructure/filesystem"
)

// S3Store keeps each blob as a JSON object named after its key.
type S3Store struct {
	fs *filesystem.S3FileSystem
}

func NewS3Store(fs *filesystem.S3FileSystem) *S3Store {
	return &S3Store{fs: fs}
}

func objectName(key string) string {
	return key + ".json"
}

func (s *S3Store) Get(ctx context.Context, key string) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.fs.ReadFile(ctx, objectName(key), &buf); err != nil {
		if errors.Is(err, filesystem.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *S3Store) Put(ctx context.Context, key string, value []byte) error {
	return s.fs.WriteFile(ctx, objectName(key), value, "application/json")
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	return s.fs.DeleteFile(ctx, objectName(key))
}
