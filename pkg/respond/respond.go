// Package respond writes the JSON envelopes shared by every handler.
package respond

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"churnpredict/pkg/logging"
)

// Message writes {"message": msg}.
func Message(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"message": msg})
}

// Error logs err and writes {"message": msg, "error": err}. The error text
// is only included for server-side failures.
func Error(c echo.Context, status int, msg string, err error) error {
	ev := logging.Warn()
	if status >= http.StatusInternalServerError {
		ev = logging.Error()
	}
	ev.Err(err).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg(msg)

	body := map[string]string{"message": msg}
	if err != nil && status >= http.StatusInternalServerError {
		body["error"] = err.Error()
	}
	return c.JSON(status, body)
}
