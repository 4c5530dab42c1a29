package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"inquiryapi/internal/config"
)

type fakeProbe struct {
	offline     bool
	pingErr     error
	listErr     error
	collections []string
}

func (f *fakeProbe) Connected() bool { return !f.offline }

func (f *fakeProbe) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeProbe) Collections(ctx context.Context, limit int) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if len(f.collections) > limit {
		return f.collections[:limit], nil
	}
	return f.collections, nil
}

func TestHealthService_RootAndCheck(t *testing.T) {
	svc := NewHealthService(&fakeProbe{}, config.DatabaseConfig{}, zaptest.NewLogger(t))

	root, err := svc.Root(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Backend läuft", root.Message)

	check, err := svc.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", check.Status)
}

func TestHealthService_Test(t *testing.T) {
	cfg := config.DatabaseConfig{URL: "sqlite:///./inquiries.db"}

	t.Run("connected", func(t *testing.T) {
		names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
		svc := NewHealthService(&fakeProbe{collections: names}, cfg, zaptest.NewLogger(t))

		res, err := svc.Test(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "running", res.Backend)
		assert.Equal(t, "connected & working", res.Database)
		assert.Equal(t, "connected", res.ConnectionStatus)
		assert.Equal(t, "set", res.DatabaseURL)
		assert.Equal(t, "not set", res.DatabaseName)
		assert.Len(t, res.Collections, 10)
	})

	t.Run("unreachable", func(t *testing.T) {
		svc := NewHealthService(&fakeProbe{pingErr: errors.New("connection refused")}, cfg, zaptest.NewLogger(t))

		res, err := svc.Test(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "not connected", res.ConnectionStatus)
		assert.Contains(t, res.Database, "connection refused")
		assert.Empty(t, res.Collections)
	})

	t.Run("listing fails", func(t *testing.T) {
		svc := NewHealthService(&fakeProbe{listErr: errors.New("no such table: documents")}, cfg, zaptest.NewLogger(t))

		res, err := svc.Test(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "connected", res.ConnectionStatus)
		assert.Contains(t, res.Database, "connected but error")
	})

	t.Run("not connected", func(t *testing.T) {
		probe := &fakeProbe{offline: true, pingErr: errors.New("document store not connected")}
		svc := NewHealthService(probe, config.DatabaseConfig{}, zaptest.NewLogger(t))

		res, err := svc.Test(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "not available", res.Database)
		assert.Equal(t, "not set", res.DatabaseURL)
	})
}
