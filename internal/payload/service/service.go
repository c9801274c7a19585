package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gameface/payloadstore/internal/payload"
	"github.com/gameface/payloadstore/internal/payload/repository"
	"github.com/gameface/payloadstore/pkg/logger"
	"github.com/gameface/payloadstore/pkg/metrics"
)

var (
	ErrInvalidDocument = errors.New("invalid JSON document")
	ErrNotFound        = errors.New("not found")
)

// Service defines the payload operations used by the handler layer.
type Service interface {
	// Store re-indents raw and replaces the stored document with it.
	Store(ctx context.Context, raw []byte) error
	// Retrieve returns the stored document bytes unmodified.
	Retrieve(ctx context.Context) ([]byte, error)
	Ready(ctx context.Context) error
}

type Options struct {
	// SerializeWrites orders Store calls and keeps Retrieve from interleaving
	// with a write. Off reproduces unsynchronised last-writer-wins.
	SerializeWrites bool
}

// New returns a Service backed by repo.
func New(repo repository.Repository, opts Options) Service {
	return &payloadService{repo: repo, serialize: opts.SerializeWrites}
}

type payloadService struct {
	repo      repository.Repository
	serialize bool
	mu        sync.RWMutex
}

func (s *payloadService) Store(ctx context.Context, raw []byte) error {
	doc, err := payload.Format(raw)
	if err != nil {
		metrics.PayloadOperations.WithLabelValues("store", "invalid").Inc()
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if s.serialize {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	if err := s.repo.Replace(ctx, doc); err != nil {
		metrics.PayloadOperations.WithLabelValues("store", "error").Inc()
		return fmt.Errorf("replace document: %w", err)
	}
	metrics.PayloadOperations.WithLabelValues("store", "ok").Inc()
	metrics.StoredBytes.Set(float64(len(doc)))
	logger.Debugf("stored document (%d bytes)", len(doc))
	return nil
}

func (s *payloadService) Retrieve(ctx context.Context) ([]byte, error) {
	if s.serialize {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	data, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.PayloadOperations.WithLabelValues("retrieve", "not_found").Inc()
			return nil, ErrNotFound
		}
		metrics.PayloadOperations.WithLabelValues("retrieve", "error").Inc()
		return nil, fmt.Errorf("load document: %w", err)
	}
	metrics.PayloadOperations.WithLabelValues("retrieve", "ok").Inc()
	return data, nil
}

func (s *payloadService) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
