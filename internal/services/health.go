package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	health "inquiryapi/gen/health"
	"inquiryapi/internal/config"
)

const (
	diagnosticTimeout   = 5 * time.Second
	diagnosticMaxListed = 10
	maxDiagnosticDetail = 50
)

// StoreProbe is the part of the document store the diagnostics need
type StoreProbe interface {
	// Connected reports whether a database handle exists at all
	Connected() bool
	Ping(ctx context.Context) error
	Collections(ctx context.Context, limit int) ([]string, error)
}

// HealthService implements the health service
type HealthService struct {
	probe  StoreProbe
	cfg    config.DatabaseConfig
	logger *zap.Logger
}

// NewHealthService creates a new health service
func NewHealthService(probe StoreProbe, cfg config.DatabaseConfig, logger *zap.Logger) *HealthService {
	return &HealthService{
		probe:  probe,
		cfg:    cfg,
		logger: logger.With(zap.String("component", "health")),
	}
}

// Root implements the liveness message
func (s *HealthService) Root(ctx context.Context) (*health.RootResult, error) {
	return &health.RootResult{Message: "Backend läuft"}, nil
}

// Check implements the health check method
func (s *HealthService) Check(ctx context.Context) (*health.HealthResult, error) {
	return &health.HealthResult{Status: "ok"}, nil
}

// Test reports store connectivity and which store settings are present. It
// never fails; problems are described in the result.
func (s *HealthService) Test(ctx context.Context) (*health.TestResult, error) {
	res := &health.TestResult{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      setOrNot(s.cfg.URL),
		DatabaseName:     setOrNot(s.cfg.Name),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	ctx, cancel := context.WithTimeout(ctx, diagnosticTimeout)
	defer cancel()

	if err := s.probe.Ping(ctx); err != nil {
		s.logger.Warn("store diagnostics: ping failed", zap.Error(err))
		if s.probe.Connected() {
			res.Database = "error: " + truncate(diagnostic(err), maxDiagnosticDetail)
		}
		return res, nil
	}
	res.Database = "available"
	res.ConnectionStatus = "connected"

	collections, err := s.probe.Collections(ctx, diagnosticMaxListed)
	if err != nil {
		s.logger.Warn("store diagnostics: listing collections failed", zap.Error(err))
		res.Database = "connected but error: " + truncate(diagnostic(err), maxDiagnosticDetail)
		return res, nil
	}
	res.Collections = collections
	res.Database = "connected & working"
	return res, nil
}

func setOrNot(v string) string {
	if v == "" {
		return "not set"
	}
	return "set"
}
