package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churnpredict/entities"
)

func TestMappingHandler(t *testing.T) {
	e := echo.New()
	e.GET("/get_domain_fields_mapping", New().Mapping)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_domain_fields_mapping", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		DomainFields []entities.DomainFields `json:"domain_fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.DomainFields, 10)
	assert.Equal(t, "Telecom", body.DomainFields[0].Domain)
	assert.Contains(t, rec.Body.String(), `"Domain":"Telecom","Fields":["CustomerID"`)
}
