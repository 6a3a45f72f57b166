package api_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"phishguard/internal/api"
	"phishguard/internal/api/handler/v1handler"
	mockdetector "phishguard/internal/detector/mock"
	"phishguard/pkg/domain"
	"phishguard/pkg/logger"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.TestEnvironment)
	m.Run()
}

func newServer(t *testing.T, opts api.Options) (*mockdetector.MockDetector, http.Handler) {
	t.Helper()
	det := mockdetector.NewMockDetector(gomock.NewController(t))
	if opts.SecHandlerOptions == nil {
		opts.SecHandlerOptions = &v1handler.SecHandlerOptions{}
	}
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}
	opts.RequestTimeout = time.Second

	srv, err := api.NewServer(api.Deps{
		Detector:      det,
		MeterProvider: sdkmetric.NewMeterProvider(),
	}, opts)
	require.NoError(t, err)

	return det, srv.Handler
}

func TestNewServer_Routes(t *testing.T) {
	det, h := newServer(t, api.Options{AllowedOrigins: []string{"*"}})

	det.EXPECT().CheckURL(gomock.Any(), "https://a.example/", "").Return(domain.Verdict{
		Classification: domain.ClassificationSafe,
		Source:         domain.SourceScoring,
	}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/checks", strings.NewReader(`{"url":"https://a.example/"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"classification":"safe"`)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/specs/v1.yaml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "openapi: 3.0.3")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/cmdline", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewServer_CORSPreflight(t *testing.T) {
	_, h := newServer(t, api.Options{AllowedOrigins: []string{"chrome-extension://abc"}})

	req := httptest.NewRequest(http.MethodOptions, "/v1/checks", nil)
	req.Header.Set("Origin", "chrome-extension://abc")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "chrome-extension://abc", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewServer_RequiresToken(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	_, h := newServer(t, api.Options{
		SecHandlerOptions: &v1handler.SecHandlerOptions{
			PublicKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub})),
		},
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/preferences", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// documentation stays public
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/specs/v1.yaml", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
