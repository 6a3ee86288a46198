package jsonutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSerialize(t *testing.T) {
	c, rec := newContext("")
	require.NoError(t, Serializer{}.Serialize(c, map[string]int{"count": 3}, ""))
	assert.JSONEq(t, `{"count":3}`, rec.Body.String())
}

func TestDeserialize(t *testing.T) {
	c, _ := newContext(`{"name":"sms"}`)
	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, Serializer{}.Deserialize(c, &out))
	assert.Equal(t, "sms", out.Name)
}

func TestDeserializeErrorsAreBadRequest(t *testing.T) {
	for _, body := range []string{`{"name":`, `{"name":42}`} {
		c, _ := newContext(body)
		var out struct {
			Name string `json:"name"`
		}
		err := Serializer{}.Deserialize(c, &out)
		require.Error(t, err, body)
		if he, ok := err.(*echo.HTTPError); ok {
			assert.Equal(t, http.StatusBadRequest, he.Code)
		}
	}
}
