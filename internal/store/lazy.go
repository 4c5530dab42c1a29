package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"inquiryapi/internal/database"
	apperrors "inquiryapi/pkg/errors"
)

// OpenFunc opens the database behind a LazyStore
type OpenFunc func() (*gorm.DB, error)

// LazyStore is a document store that connects on first use. While the
// database cannot be opened every call fails with STORE_UNAVAILABLE; a new
// attempt is made at most once per retry interval.
type LazyStore struct {
	open          OpenFunc
	retryInterval time.Duration
	logger        *zap.Logger

	mu          sync.Mutex
	db          *gorm.DB
	docs        *DocumentStore
	lastErr     error
	lastAttempt time.Time
}

var _ RecordStore = (*LazyStore)(nil)

// NewLazyStore creates a store that opens its database with open
func NewLazyStore(open OpenFunc, retryInterval time.Duration, logger *zap.Logger) *LazyStore {
	return &LazyStore{
		open:          open,
		retryInterval: retryInterval,
		logger:        logger,
	}
}

// Connect opens the database unless it is already open
func (s *LazyStore) Connect() error {
	_, err := s.current()
	return err
}

// Connected reports whether the database has been opened
func (s *LazyStore) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docs != nil
}

func (s *LazyStore) current() (*DocumentStore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.docs != nil {
		return s.docs, nil
	}
	if s.lastErr != nil && time.Since(s.lastAttempt) < s.retryInterval {
		return nil, s.unavailable()
	}

	s.lastAttempt = time.Now()
	db, err := s.open()
	if err != nil {
		s.lastErr = err
		s.logger.Warn("document store not reachable", zap.String("component", "store"), zap.Error(err))
		return nil, s.unavailable()
	}

	s.db = db
	s.docs = NewDocumentStore(db, s.logger)
	s.lastErr = nil
	s.logger.Info("document store connected", zap.String("component", "store"))
	return s.docs, nil
}

func (s *LazyStore) unavailable() error {
	return apperrors.Wrap(apperrors.ErrCodeStoreUnavailable, "document store not connected", s.lastErr)
}

// Insert stores record in collection once the database is reachable
func (s *LazyStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	docs, err := s.current()
	if err != nil {
		return "", err
	}
	return docs.Insert(ctx, collection, record)
}

// Ping checks that the store is reachable, connecting first if needed
func (s *LazyStore) Ping(ctx context.Context) error {
	docs, err := s.current()
	if err != nil {
		return err
	}
	return docs.Ping(ctx)
}

// Collections lists collection names, see DocumentStore.Collections
func (s *LazyStore) Collections(ctx context.Context, limit int) ([]string, error) {
	docs, err := s.current()
	if err != nil {
		return nil, err
	}
	return docs.Collections(ctx, limit)
}

// RefreshConnectionMetrics publishes pool gauges when connected
func (s *LazyStore) RefreshConnectionMetrics() {
	s.mu.Lock()
	docs := s.docs
	s.mu.Unlock()
	if docs != nil {
		docs.RefreshConnectionMetrics()
	}
}

// Close releases the database if it was opened
func (s *LazyStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := database.Close(s.db)
	s.db = nil
	s.docs = nil
	return err
}
