package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"inquiryapi/internal/config"
	"inquiryapi/internal/database"
	"inquiryapi/internal/services"
	"inquiryapi/internal/store"
	"inquiryapi/internal/uploads"
)

type testServer struct {
	handler   http.Handler
	db        *gorm.DB
	store     *store.DocumentStore
	uploadDir string
}

func newTestServer(t *testing.T, mutate ...func(*config.Config)) *testServer {
	t.Helper()
	logger := zaptest.NewLogger(t)

	cfg := &config.Config{
		App:      config.AppConfig{Name: "Inquiry API", Version: "test", Port: "8000"},
		Database: config.DatabaseConfig{URL: ":memory:"},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS", "HEAD"},
			AllowedHeaders: []string{"*"},
			MaxAge:         86400,
		},
		Uploads: config.UploadsConfig{Dir: filepath.Join(t.TempDir(), "uploads"), MaxUploadMB: 1},
	}
	for _, m := range mutate {
		m(cfg)
	}

	db, err := database.Open(cfg.Database, logger, &store.Document{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	docs := store.NewDocumentStore(db, logger)
	files := uploads.New(cfg.Uploads.Dir)

	h := New(cfg, logger,
		services.NewHealthService(docs, cfg.Database, logger),
		services.NewInquiryService(docs, files, logger),
	)
	return &testServer{handler: h, db: db, store: docs, uploadDir: cfg.Uploads.Dir}
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

type upload struct {
	name        string
	contentType string
	content     []byte
}

func submitRequest(t *testing.T, fields map[string]string, files ...upload) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="files"; filename=%q`, f.name))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, SubmitPath, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validFields() map[string]string {
	return map[string]string{
		"name":         "Max Mustermann",
		"email":        "max@example.com",
		"phone":        "0123456789",
		"zip_city":     "12345 Berlin",
		"project_type": "Neubau",
		"description":  "Einfamilienhaus",
	}
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func TestSubmit_WithAttachment(t *testing.T) {
	ts := newTestServer(t)
	content := bytes.Repeat([]byte("%"), 2048)

	rec := ts.do(submitRequest(t, validFields(), upload{"plan.pdf", "application/pdf", content}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	assert.Equal(t, "Anfrage erfolgreich übermittelt", body["message"])
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)

	written, err := os.ReadFile(filepath.Join(ts.uploadDir, "plan.pdf"))
	require.NoError(t, err)
	assert.Equal(t, content, written)

	doc, err := ts.store.Get(t.Context(), id)
	require.NoError(t, err)
	var stored map[string]any
	require.NoError(t, json.Unmarshal(doc.Body, &stored))
	assert.Equal(t, "website", stored["source"])
	assert.Equal(t, "12345 Berlin", stored["zip_city"])
	assert.Equal(t, []any{map[string]any{
		"filename":     "plan.pdf",
		"content_type": "application/pdf",
		"size":         float64(2048),
	}}, stored["files"])
}

func TestSubmit_SanitizesFilename(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(submitRequest(t, validFields(), upload{"a/b.pdf", "application/pdf", []byte("x")}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	_, err := os.Stat(filepath.Join(ts.uploadDir, "a_b.pdf"))
	assert.NoError(t, err)
}

func TestSubmit_InvalidEmail(t *testing.T) {
	ts := newTestServer(t)
	fields := validFields()
	fields["email"] = "not-an-email"

	rec := ts.do(submitRequest(t, fields, upload{"plan.pdf", "application/pdf", []byte("x")}))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "bad_request", rec.Header().Get("goa-error"))

	_, err := os.Stat(ts.uploadDir)
	assert.True(t, os.IsNotExist(err), "no attachment is written for a rejected form")
}

func TestSubmit_MissingField(t *testing.T) {
	ts := newTestServer(t)
	fields := validFields()
	delete(fields, "project_type")

	rec := ts.do(submitRequest(t, fields))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["message"], "project_type")
}

func TestSubmit_StoreUnavailable(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, database.Close(ts.db))

	rec := ts.do(submitRequest(t, validFields(), upload{"plan.pdf", "application/pdf", []byte("x")}))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "database_error", rec.Header().Get("goa-error"))

	msg, _ := decodeBody(t, rec)["message"].(string)
	assert.True(t, strings.HasPrefix(msg, "Datenbankfehler: "), msg)

	_, err := os.Stat(filepath.Join(ts.uploadDir, "plan.pdf"))
	assert.NoError(t, err, "attachments written before the failed insert stay on disk")
}

func TestSubmit_UploadDirUnavailable(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, os.WriteFile(ts.uploadDir, []byte("not a directory"), 0644))

	rec := ts.do(submitRequest(t, validFields(), upload{"plan.pdf", "application/pdf", []byte("x")}))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "upload_failed", rec.Header().Get("goa-error"))

	msg, _ := decodeBody(t, rec)["message"].(string)
	assert.True(t, strings.HasPrefix(msg, "Fehler beim Datei-Upload: "), msg)
}

func TestSubmit_BodyTooLarge(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(submitRequest(t, validFields(), upload{"big.bin", "application/octet-stream", make([]byte, 2*1024*1024)}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	_, err := os.Stat(filepath.Join(ts.uploadDir, "big.bin"))
	assert.True(t, os.IsNotExist(err))
}

func TestSubmit_NotMultipart(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, SubmitPath, strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := ts.do(req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"status": "ok"}, decodeBody(t, rec))

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Backend läuft", decodeBody(t, rec)["message"])

	ts.do(submitRequest(t, validFields()))
	rec = ts.do(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "running", body["backend"])
	assert.Equal(t, "connected", body["connection_status"])
	assert.Equal(t, "set", body["database_url"])
	assert.Equal(t, []any{"inquiry"}, body["collections"])
}

func TestMiddleware(t *testing.T) {
	t.Run("security headers", func(t *testing.T) {
		ts := newTestServer(t)
		rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	})

	t.Run("preflight", func(t *testing.T) {
		ts := newTestServer(t)
		req := httptest.NewRequest(http.MethodOptions, SubmitPath, nil)
		req.Header.Set("Origin", "https://example.com")
		rec := ts.do(req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("origin not allowed", func(t *testing.T) {
		ts := newTestServer(t, func(c *config.Config) {
			c.CORS.AllowedOrigins = []string{"https://example.com"}
		})
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "https://evil.example")
		assert.Equal(t, http.StatusForbidden, ts.do(req).Code)

		req.Header.Set("Origin", "https://example.com")
		assert.Equal(t, http.StatusOK, ts.do(req).Code)
	})

	t.Run("metrics", func(t *testing.T) {
		ts := newTestServer(t)
		ts.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))
		rec := ts.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "http_requests_total")
	})
}

func TestServer_StoreUnreachableAtStartup(t *testing.T) {
	logger := zaptest.NewLogger(t)
	cfg := &config.Config{
		App:      config.AppConfig{Port: "8000"},
		Database: config.DatabaseConfig{URL: "postgresql://u:p@127.0.0.1:1/x"},
		CORS:     config.CORSConfig{AllowedOrigins: []string{"*"}},
		Uploads:  config.UploadsConfig{Dir: filepath.Join(t.TempDir(), "uploads"), MaxUploadMB: 1},
	}

	docs := store.NewLazyStore(func() (*gorm.DB, error) {
		return database.Open(cfg.Database, logger, &store.Document{})
	}, 0, logger)
	require.Error(t, docs.Connect())
	t.Cleanup(func() { _ = docs.Close() })

	ts := &testServer{
		handler: New(cfg, logger,
			services.NewHealthService(docs, cfg.Database, logger),
			services.NewInquiryService(docs, uploads.New(cfg.Uploads.Dir), logger),
		),
		uploadDir: cfg.Uploads.Dir,
	}

	rec := ts.do(submitRequest(t, validFields()))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "database_error", rec.Header().Get("goa-error"))
	msg, _ := decodeBody(t, rec)["message"].(string)
	assert.True(t, strings.HasPrefix(msg, "Datenbankfehler: "), msg)

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "running", body["backend"])
	assert.Equal(t, "not available", body["database"])
	assert.Equal(t, "not connected", body["connection_status"])
	assert.Equal(t, []any{}, body["collections"])

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
