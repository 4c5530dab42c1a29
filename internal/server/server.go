package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	goahttp "goa.design/goa/v3/http"
	"goa.design/goa/v3/http/middleware"
	goamiddleware "goa.design/goa/v3/middleware"

	health "inquiryapi/gen/health"
	healthsvr "inquiryapi/gen/http/health/server"
	inquirysvr "inquiryapi/gen/http/inquiry/server"
	inquiry "inquiryapi/gen/inquiry"
	"inquiryapi/internal/config"
	"inquiryapi/internal/metrics"
	"inquiryapi/internal/services"
)

// SubmitPath is the route inquiries are posted to
const SubmitPath = "/api/inquiries"

// New mounts the health and inquiry services and wraps them in the shared
// middleware chain: security headers, CORS, request logging, Prometheus.
// /metrics is served next to the API.
func New(cfg *config.Config, logger *zap.Logger, healthSvc health.Service, inquirySvc inquiry.Service) http.Handler {
	logger = logger.With(zap.String("component", "http"))

	healthEndpoints := health.NewEndpoints(healthSvc)
	inquiryEndpoints := inquiry.NewEndpoints(inquirySvc)

	mux := goahttp.NewMuxer()

	errorHandler := func(ctx context.Context, w http.ResponseWriter, err error) {
		id, _ := ctx.Value(goamiddleware.RequestIDKey).(string)
		logger.Error("failed to encode response", zap.String("request_id", id), zap.Error(err))
	}

	healthServer := healthsvr.New(healthEndpoints, mux, goahttp.RequestDecoder, goahttp.ResponseEncoder, errorHandler, nil)
	healthServer.Use(middleware.RequestID())
	healthServer.Use(middleware.PopulateRequestContext())
	healthServer.Mount(mux)

	inquiryServer := inquirysvr.New(inquiryEndpoints, mux, goahttp.RequestDecoder, goahttp.ResponseEncoder, errorHandler, nil, services.InquirySubmitDecoder)
	inquiryServer.Use(limitBody(cfg.Uploads.MaxBytes()))
	inquiryServer.Use(middleware.RequestID())
	inquiryServer.Use(middleware.PopulateRequestContext())
	inquiryServer.Mount(mux)

	for _, m := range healthServer.Mounts {
		logger.Debug("mounted", zap.String("method", m.Method), zap.String("verb", m.Verb), zap.String("pattern", m.Pattern))
	}
	for _, m := range inquiryServer.Mounts {
		logger.Debug("mounted", zap.String("method", m.Method), zap.String("verb", m.Verb), zap.String("pattern", m.Pattern))
	}

	metricsHandler := promhttp.Handler()
	rootHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			metricsHandler.ServeHTTP(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	})

	// Security -> CORS -> Logging -> Prometheus -> Handler
	return securityHeaders(cors(requestLogging(metrics.PrometheusMiddleware(rootHandler), logger), cfg), cfg)
}

// limitBody caps the request body; reading past the limit fails the multipart decode
func limitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// securityHeaders adds security headers to responses
func securityHeaders(handler http.Handler, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

		// HSTS only behind TLS in production
		if !cfg.App.Debug && r.TLS != nil {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		handler.ServeHTTP(w, r)
	})
}

// cors answers preflight requests and reflects allowed origins. A lone "*"
// in ALLOWED_HOSTS allows every origin.
func cors(handler http.Handler, cfg *config.Config) http.Handler {
	allowAll := len(cfg.CORS.AllowedOrigins) == 0 || (len(cfg.CORS.AllowedOrigins) == 1 && cfg.CORS.AllowedOrigins[0] == "*")
	allowed := make(map[string]bool, len(cfg.CORS.AllowedOrigins))
	for _, o := range cfg.CORS.AllowedOrigins {
		allowed[strings.TrimSpace(o)] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" && !allowAll && !allowed[origin] {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		w.Header().Set("Access-Control-Allow-Methods", strings.Join(cfg.CORS.AllowedMethods, ", "))
		w.Header().Set("Access-Control-Allow-Headers", strings.Join(cfg.CORS.AllowedHeaders, ", "))
		w.Header().Set("Access-Control-Expose-Headers", "Content-Type, X-Request-ID")
		w.Header().Set("Access-Control-Max-Age", fmt.Sprintf("%d", cfg.CORS.MaxAge))

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		handler.ServeHTTP(w, r)
	})
}

// statusRecorder wraps http.ResponseWriter to capture the status code
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// requestLogging logs every request except health probes
func requestLogging(handler http.Handler, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/health" {
			handler.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		handler.ServeHTTP(wrapped, r)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", wrapped.statusCode),
			zap.Duration("duration", time.Since(start)),
			zap.String("remote", r.RemoteAddr),
		}
		if wrapped.statusCode >= http.StatusInternalServerError {
			logger.Warn("request failed", fields...)
			return
		}
		logger.Info("request", fields...)
	})
}
