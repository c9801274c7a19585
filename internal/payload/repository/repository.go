package repository

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("document not found")
)

// Repository holds the single current document. Replace overwrites it in
// full; Load returns ErrNotFound until the first Replace.
type Repository interface {
	Load(ctx context.Context) ([]byte, error)
	Replace(ctx context.Context, data []byte) error
	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
