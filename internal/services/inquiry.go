package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"inquiryapi/gen/inquiry"
	"inquiryapi/internal/domain"
	"inquiryapi/internal/metrics"
	"inquiryapi/internal/store"
	"inquiryapi/internal/uploads"
)

// InquiryService implements the inquiry service
type InquiryService struct {
	records  store.RecordStore
	files    *uploads.Store
	validate *validator.Validate
	logger   *zap.Logger
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(records store.RecordStore, files *uploads.Store, logger *zap.Logger) *InquiryService {
	return &InquiryService{
		records:  records,
		files:    files,
		validate: domain.NewValidator(),
		logger:   logger.With(zap.String("component", "inquiry")),
	}
}

// Submit validates the form, stores the attachments and inserts the inquiry.
// Attachments are written before the record and are not removed when a later
// step fails.
func (s *InquiryService) Submit(ctx context.Context, p *inquiry.InquirySubmitPayload) (*inquiry.InquirySubmitResult, error) {
	form := formFromPayload(p)

	record, err := form.Validate(s.validate)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			s.logger.Info("submit rejected", zap.String("field", verr.Field), zap.Stringer("reason", verr.Kind))
		} else {
			s.logger.Error("submit validation could not run", zap.Error(err))
		}
		metrics.RecordInquiryFailure("validation")
		return nil, InquiryBadRequest(err)
	}

	files, err := s.files.SaveAll(ctx, uploadsFromPayload(p))
	if err != nil {
		s.logger.Error("submit failed: attachment write error", zap.Error(err))
		metrics.RecordInquiryFailure("upload")
		return nil, InquiryUploadFailed(err)
	}
	record.Files = files

	id, err := s.records.Insert(ctx, domain.CollectionInquiry, record)
	if err != nil {
		s.logger.Error("submit failed: store error", zap.Error(err), zap.Int("orphaned_files", len(files)))
		metrics.RecordInquiryFailure("database")
		return nil, InquiryDatabaseError(err)
	}

	var total int64
	for _, f := range files {
		total += f.Size
	}
	metrics.RecordInquirySubmission(len(files), total)
	s.logger.Info("submit successful", zap.String("id", id), zap.Int("files", len(files)), zap.String("source", record.Source))

	return &inquiry.InquirySubmitResult{
		ID:      id,
		Message: SubmitSuccessMessage,
	}, nil
}

func formFromPayload(p *inquiry.InquirySubmitPayload) domain.InquiryForm {
	return domain.InquiryForm{
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		ZipCity:     p.ZipCity,
		ProjectType: p.ProjectType,
		Description: p.Description,
		Source:      p.Source,
	}
}

func uploadsFromPayload(p *inquiry.InquirySubmitPayload) []uploads.Upload {
	files := make([]uploads.Upload, 0, len(p.Files))
	for _, f := range p.Files {
		if f == nil {
			continue
		}
		u := uploads.Upload{
			Filename: f.Filename,
			Content:  f.Content,
		}
		if f.ContentType != nil {
			u.ContentType = *f.ContentType
		}
		files = append(files, u)
	}
	return files
}
