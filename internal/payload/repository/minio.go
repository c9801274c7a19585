package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/gameface/payloadstore/internal/storage"
)

// ObjectStore is the subset of storage.MinIOStorage the repository needs.
type ObjectStore interface {
	UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	DownloadFile(ctx context.Context, key string) (io.ReadCloser, error)
	BucketReachable(ctx context.Context) error
}

// MinIORepo stores the document as a single object named after the stored file.
type MinIORepo struct {
	store ObjectStore
	key   string
}

func NewMinIORepo(store ObjectStore, key string) *MinIORepo {
	return &MinIORepo{store: store, key: key}
}

func (m *MinIORepo) Load(ctx context.Context) ([]byte, error) {
	rc, err := m.store.DownloadFile(ctx, m.key)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("download %s: %w", m.key, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", m.key, err)
	}
	return b, nil
}

func (m *MinIORepo) Replace(ctx context.Context, data []byte) error {
	if err := m.store.UploadFile(ctx, m.key, bytes.NewReader(data), int64(len(data)), "application/json"); err != nil {
		return fmt.Errorf("upload %s: %w", m.key, err)
	}
	return nil
}

func (m *MinIORepo) Ping(ctx context.Context) error {
	return m.store.BucketReachable(ctx)
}
