package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "store")

// loadJSON decodes the blob at key. A missing blob or one that does not
// parse yields the zero value; the latter is logged. Only backend failures
// are returned.
func loadJSON[T any](ctx context.Context, blobs BlobStore, key string) (T, error) {
	var zero T
	raw, err := blobs.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return zero, nil
	}
	if err != nil {
		return zero, fmt.Errorf("read %s: %w", key, err)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.WithError(err).WithField("key", key).Warn("stored value is not valid JSON, treating as empty")
		return zero, nil
	}
	return out, nil
}

func saveJSON(ctx context.Context, blobs BlobStore, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := blobs.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
