package repository

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"
)

type fakeObjectStore struct {
	objects     map[string][]byte
	contentType string
	uploadErr   error
	bucketErr   error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string][]byte{}}
}

func (f *fakeObjectStore) UploadFile(_ context.Context, key string, reader io.Reader, size int64, contentType string) error {
	if f.uploadErr != nil {
		return f.uploadErr
	}
	b, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	if int64(len(b)) != size {
		return errors.New("size mismatch")
	}
	f.objects[key] = b
	f.contentType = contentType
	return nil
}

func (f *fakeObjectStore) DownloadFile(_ context.Context, key string) (io.ReadCloser, error) {
	b, ok := f.objects[key]
	if !ok {
		return nil, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound, Key: key}
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (f *fakeObjectStore) BucketReachable(_ context.Context) error { return f.bucketErr }

func TestMinIORepo(t *testing.T) {
	ctx := context.Background()
	store := newFakeObjectStore()
	repo := NewMinIORepo(store, "teachable_output.json")

	_, err := repo.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Replace(ctx, []byte("{\n  \"score\": 42\n}")))
	require.Equal(t, "application/json", store.contentType)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"score\": 42\n}", string(got))

	require.NoError(t, repo.Ping(ctx))
	store.bucketErr = errors.New("bucket gone")
	require.Error(t, repo.Ping(ctx))
}

func TestMinIORepoUploadFailure(t *testing.T) {
	store := newFakeObjectStore()
	store.uploadErr = errors.New("disk full")
	repo := NewMinIORepo(store, "teachable_output.json")

	err := repo.Replace(context.Background(), []byte(`{}`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
}
