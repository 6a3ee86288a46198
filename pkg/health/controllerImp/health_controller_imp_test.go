package controllerImp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func check(t *testing.T, h *HealthCtrl) (int, map[string]any) {
	t.Helper()
	e := echo.New()
	e.GET("/health", h.Health)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthOK(t *testing.T) {
	code, body := check(t, NewHealthCtrl(pingFunc(func(context.Context) error { return nil }), "sqlite"))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, map[string]any{"ok": true}, body["status"])
	db := body["checks"].(map[string]any)["database"].(map[string]any)
	assert.Equal(t, "sqlite", db["backend"])
	assert.NotContains(t, db, "err")
}

func TestHealthPingFailure(t *testing.T) {
	code, body := check(t, NewHealthCtrl(pingFunc(func(context.Context) error { return errors.New("no reachable servers") }), "mongo"))

	assert.Equal(t, http.StatusServiceUnavailable, code)
	db := body["checks"].(map[string]any)["database"].(map[string]any)
	assert.Equal(t, "ping: no reachable servers", db["err"])
}

func TestHealthPingHasDeadline(t *testing.T) {
	var deadline time.Time
	h := NewHealthCtrl(pingFunc(func(ctx context.Context) error {
		deadline, _ = ctx.Deadline()
		return nil
	}), "mongo")

	code, _ := check(t, h)

	assert.Equal(t, http.StatusOK, code)
	assert.WithinDuration(t, time.Now().Add(pingBudget), deadline, pingBudget)
}

func TestHealthNilStore(t *testing.T) {
	code, _ := check(t, NewHealthCtrl(nil, "mongo"))
	assert.Equal(t, http.StatusServiceUnavailable, code)
}
