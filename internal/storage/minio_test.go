package storage

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gameface/payloadstore/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"
)

func TestNewMinIOStorageRequiresEndpoint(t *testing.T) {
	_, err := NewMinIOStorage(context.Background(), nil)
	require.Error(t, err)

	_, err = NewMinIOStorage(context.Background(), &config.MinIOConfig{Bucket: "payloads"})
	require.Error(t, err)
}

func TestIsNotFound(t *testing.T) {
	require.False(t, IsNotFound(nil))
	require.False(t, IsNotFound(errors.New("connection refused")))
	require.True(t, IsNotFound(minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound}))
	require.False(t, IsNotFound(minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden}))
}
