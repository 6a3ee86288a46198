package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

var appStart = time.Now()

const pingBudget = 800 * time.Millisecond

// Pinger is satisfied by both document store handles.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthCtrl struct {
	store   Pinger
	backend string
}

func NewHealthCtrl(store Pinger, backend string) *HealthCtrl {
	return &HealthCtrl{store: store, backend: backend}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingBudget)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.store == nil {
		dbOK = false
		dbErr = "store is nil"
	} else if err := h.store.Ping(ctx); err != nil {
		dbOK = false
		dbErr = "ping: " + err.Error()
	}

	status := http.StatusOK
	if !dbOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK      bool   `json:"ok"`
		Backend string `json:"backend"`
		Err     string `json:"err,omitempty"`
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": dbOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Backend: h.backend, Err: dbErr},
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
