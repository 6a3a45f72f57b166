package controller_test

import (
	"net/http"
	"net/http/httptest"
	"phishguard/pkg/controller"
	"testing"

	"github.com/stretchr/testify/require"
)

const extensionOrigin = "chrome-extension://abcdefghijklmnop"

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/anything", nil)
	req.Header.Set("Origin", extensionOrigin)
	rec := httptest.NewRecorder()

	controller.WithCORS([]string{"*"})(next).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, res.Header.Get("Access-Control-Allow-Headers"))
	require.NotEmpty(t, res.Header.Get("Access-Control-Allow-Methods"))
}

func TestWithCORS_ListedOrigin(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/path", nil)
	req.Header.Set("Origin", extensionOrigin)
	rec := httptest.NewRecorder()

	controller.WithCORS([]string{extensionOrigin + "/"})(next).ServeHTTP(rec, req)

	require.True(t, called, "next handler should be called for non-OPTIONS request")
	res := rec.Result()
	require.Equal(t, http.StatusTeapot, res.StatusCode)
	require.Equal(t, extensionOrigin, res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
	require.Equal(t, "Origin", res.Header.Get("Vary"))
}

func TestWithCORS_UnlistedOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/path", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec := httptest.NewRecorder()

	controller.WithCORS([]string{extensionOrigin})(next).ServeHTTP(rec, req)

	require.Empty(t, rec.Result().Header.Get("Access-Control-Allow-Origin"))
}

func TestOriginAllowed(t *testing.T) {
	require.True(t, controller.OriginAllowed(nil, ""))
	require.False(t, controller.OriginAllowed(nil, extensionOrigin))
	require.True(t, controller.OriginAllowed([]string{"*"}, "https://any.example"))
	require.True(t, controller.OriginAllowed([]string{"CHROME-EXTENSION://abcdefghijklmnop"}, extensionOrigin))
	require.False(t, controller.OriginAllowed([]string{extensionOrigin}, "https://evil.example"))
}
