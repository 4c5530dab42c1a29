package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"inquiryapi/internal/database"
	"inquiryapi/internal/metrics"
	apperrors "inquiryapi/pkg/errors"
)

// RecordStore inserts a record into a named collection and returns the
// generated identifier.
type RecordStore interface {
	Insert(ctx context.Context, collection string, record any) (string, error)
}

// Document is one stored record. Body holds the record serialized as JSON,
// nested values included.
type Document struct {
	ID         string         `gorm:"primaryKey;size:36" json:"id"`
	Collection string         `gorm:"not null;index;size:100" json:"collection"`
	Body       datatypes.JSON `gorm:"not null" json:"body"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for Document
func (Document) TableName() string {
	return "documents"
}

// DocumentStore keeps JSON documents grouped by collection in a relational
// database. It is safe for concurrent use; all callers share one connection pool.
type DocumentStore struct {
	db     *gorm.DB
	logger *zap.Logger
}

var _ RecordStore = (*DocumentStore)(nil)

// NewDocumentStore creates a document store on an open database handle
func NewDocumentStore(db *gorm.DB, logger *zap.Logger) *DocumentStore {
	return &DocumentStore{
		db:     db,
		logger: logger.With(zap.String("component", "store")),
	}
}

// Insert serializes record and stores it in collection
func (s *DocumentStore) Insert(ctx context.Context, collection string, record any) (string, error) {
	if collection == "" {
		return "", apperrors.New(apperrors.ErrCodeStoreWrite, "collection name is required")
	}

	body, err := json.Marshal(record)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeStoreWrite, "failed to serialize record", err)
	}

	doc := &Document{
		ID:         uuid.NewString(),
		Collection: collection,
		Body:       datatypes.JSON(body),
	}

	start := time.Now()
	err = s.db.WithContext(ctx).Create(doc).Error
	metrics.RecordDBQuery("insert", time.Since(start), err)
	if err != nil {
		s.logger.Error("insert failed", zap.String("collection", collection), zap.Error(err))
		return "", classify(ctx, s.db, "failed to insert document", err)
	}

	s.logger.Debug("document inserted", zap.String("collection", collection), zap.String("id", doc.ID))
	return doc.ID, nil
}

// Get returns the document with the given id
func (s *DocumentStore) Get(ctx context.Context, id string) (*Document, error) {
	var doc Document
	start := time.Now()
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error
	metrics.RecordDBQuery("get", time.Since(start), err)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, fmt.Sprintf("document %s not found", id))
		}
		return nil, classify(ctx, s.db, "failed to load document", err)
	}
	return &doc, nil
}

// List returns the newest documents of a collection, at most limit of them
func (s *DocumentStore) List(ctx context.Context, collection string, limit int) ([]Document, error) {
	var docs []Document
	start := time.Now()
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("created_at DESC").
		Limit(limit).
		Find(&docs).Error
	metrics.RecordDBQuery("list", time.Since(start), err)
	if err != nil {
		return nil, classify(ctx, s.db, "failed to list documents", err)
	}
	return docs, nil
}

// Collections returns the names of non-empty collections in alphabetical
// order, at most limit of them
func (s *DocumentStore) Collections(ctx context.Context, limit int) ([]string, error) {
	var names []string
	start := time.Now()
	err := s.db.WithContext(ctx).
		Model(&Document{}).
		Distinct("collection").
		Order("collection").
		Limit(limit).
		Pluck("collection", &names).Error
	metrics.RecordDBQuery("collections", time.Since(start), err)
	if err != nil {
		return nil, classify(ctx, s.db, "failed to list collections", err)
	}
	return names, nil
}

// Connected is always true; a DocumentStore wraps an open handle
func (s *DocumentStore) Connected() bool {
	return true
}

// Ping checks that the store is reachable
func (s *DocumentStore) Ping(ctx context.Context) error {
	if err := database.HealthCheck(ctx, s.db); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeStoreUnavailable, "document store unreachable", err)
	}
	return nil
}

// RefreshConnectionMetrics publishes the connection pool state
func (s *DocumentStore) RefreshConnectionMetrics() {
	stats, err := database.GetStats(s.db)
	if err != nil {
		return
	}
	metrics.UpdateDBConnections(stats.InUse, stats.Idle)
}

// classify tells an unreachable store apart from a rejected statement
func classify(ctx context.Context, db *gorm.DB, message string, err error) error {
	pingCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
	defer cancel()
	if pingErr := database.HealthCheck(pingCtx, db); pingErr != nil {
		return apperrors.Wrap(apperrors.ErrCodeStoreUnavailable, message, err)
	}
	return apperrors.Wrap(apperrors.ErrCodeStoreWrite, message, err)
}
