package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordInquirySubmission(t *testing.T) {
	submissions := testutil.ToFloat64(inquirySubmissionsTotal)
	files := testutil.ToFloat64(inquiryFilesTotal)
	bytes := testutil.ToFloat64(inquiryUploadBytesTotal)

	RecordInquirySubmission(2, 4096)

	assert.Equal(t, submissions+1, testutil.ToFloat64(inquirySubmissionsTotal))
	assert.Equal(t, files+2, testutil.ToFloat64(inquiryFilesTotal))
	assert.Equal(t, bytes+4096, testutil.ToFloat64(inquiryUploadBytesTotal))
}

func TestRecordInquiryFailure(t *testing.T) {
	before := testutil.ToFloat64(inquiryFailuresTotal.WithLabelValues("upload"))
	RecordInquiryFailure("upload")
	assert.Equal(t, before+1, testutil.ToFloat64(inquiryFailuresTotal.WithLabelValues("upload")))
}

func TestRecordDBQuery(t *testing.T) {
	ok := testutil.ToFloat64(dbQueriesTotal.WithLabelValues("insert", "success"))
	failed := testutil.ToFloat64(dbQueriesTotal.WithLabelValues("insert", "error"))

	RecordDBQuery("insert", time.Millisecond, nil)
	RecordDBQuery("insert", time.Millisecond, errors.New("closed"))

	assert.Equal(t, ok+1, testutil.ToFloat64(dbQueriesTotal.WithLabelValues("insert", "success")))
	assert.Equal(t, failed+1, testutil.ToFloat64(dbQueriesTotal.WithLabelValues("insert", "error")))
}

func TestUpdateDBConnections(t *testing.T) {
	UpdateDBConnections(3, 2)
	assert.Equal(t, 3.0, testutil.ToFloat64(dbConnectionsActive))
	assert.Equal(t, 2.0, testutil.ToFloat64(dbConnectionsIdle))
}

func TestPrometheusMiddleware(t *testing.T) {
	handler := PrometheusMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/brew", "418"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/brew", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/brew", "418")))
}

func TestPrometheusMiddleware_SkipsMetricsEndpoint(t *testing.T) {
	handler := PrometheusMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, 0.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/metrics", "200")))
}
