package controllerImp

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"churnpredict/database"
	"churnpredict/pkg/collection/repositoryImp"
	"churnpredict/pkg/collection/serviceImp"
	"churnpredict/pkg/jsonutil"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	store, err := database.OpenSQLite(filepath.Join(t.TempDir(), "churn.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	h := New(serviceImp.NewCollectionService(repositoryImp.NewSQLite(store.DB), 1000))
	e := echo.New()
	e.JSONSerializer = jsonutil.Serializer{}
	e.GET("/list_collections", h.List)
	e.GET("/get_collection_by_name/:name", h.GetByName)
	e.GET("/get_collection_columns/:name", h.Columns)
	e.GET("/get_distinct_counts_for_charts_dynamic/:name", h.Charts)
	e.GET("/get_distinct_counts_for_charts_dynamic_old/:name", h.LegacyCounts)
	e.POST("/import_collection/:name", h.Import)
	return e
}

func get(t *testing.T, e *echo.Echo, path string) (int, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return rec.Code, out
}

func upload(t *testing.T, e *echo.Echo, name, field string, rows [][]any) (int, map[string]any) {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	book, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, "customers.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(book.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/import_collection/"+name, &body)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	out := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

var customerRows = [][]any{
	{"CustomerID", "Gender", "Age", "SignupDate", "Churn"},
	{"C-1", "F", 45, "2023-01-01", "No"},
	{"C-2", "M", 72, "2023-02-01", "Yes"},
	{"C-3", "F", 8, "2023-03-01", "No"},
}

func TestImportThenRead(t *testing.T) {
	e := newServer(t)

	code, body := upload(t, e, "Customers", "file", customerRows)
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, 3.0, body["inserted"])

	code, body = get(t, e, "/list_collections")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"Customers"}, body["collections"])

	code, body = get(t, e, "/get_collection_by_name/Customers")
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, body["data"], 3)
	first := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "C-1", first["CustomerID"])
	assert.Equal(t, 45.0, first["Age"])

	code, body = get(t, e, "/get_collection_columns/Customers")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{"CustomerID", "Gender", "Age", "SignupDate", "Churn"}, body["columns"])
	assert.NotContains(t, body, "message")
}

func TestChartsEndpoint(t *testing.T) {
	e := newServer(t)
	code, _ := upload(t, e, "Customers", "file", customerRows)
	require.Equal(t, http.StatusCreated, code)

	code, body := get(t, e, "/get_distinct_counts_for_charts_dynamic/Customers")

	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", body["status"])
	data := body["data"].([]any)
	require.Len(t, data, 3, "CustomerID and SignupDate are skipped")

	var names []string
	for _, s := range data {
		names = append(names, s.(map[string]any)["fieldName"].(string))
	}
	assert.Equal(t, []string{"Gender", "Age", "Churn"}, names)

	age := data[1].(map[string]any)
	assert.Equal(t, 10.0, age["divisor"])
	assert.Equal(t, []any{
		map[string]any{"label": "5", "count": 1.0},
		map[string]any{"label": "8", "count": 1.0},
		map[string]any{"label": "1", "count": 1.0},
	}, age["chartdata"])
}

func TestLegacyCountsEndpoint(t *testing.T) {
	e := newServer(t)

	code, body := get(t, e, "/get_distinct_counts_for_charts_dynamic_old/Customers")
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body)

	code, _ = upload(t, e, "Customers", "file", customerRows)
	require.Equal(t, http.StatusCreated, code)

	code, body = get(t, e, "/get_distinct_counts_for_charts_dynamic_old/Customers")
	require.Equal(t, http.StatusOK, code)
	assert.ElementsMatch(t, []string{"Age", "Churn", "Gender", "SignupDate"}, keys(body))
	assert.ElementsMatch(t, []any{
		map[string]any{"label": "F", "count": 2.0},
		map[string]any{"label": "M", "count": 1.0},
	}, body["Gender"])
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func TestColumnsOfMissingCollection(t *testing.T) {
	e := newServer(t)

	code, body := get(t, e, "/get_collection_columns/Ghost")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, []any{}, body["columns"])
	assert.Equal(t, "Collection 'Ghost' is empty or does not exist.", body["message"])
}

func TestImportRejections(t *testing.T) {
	e := newServer(t)

	code, body := upload(t, e, "Customers", "upload", customerRows)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "No spreadsheet file received", body["message"])

	code, body = upload(t, e, "Entities", "file", customerRows)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Cannot import into collection 'Entities'", body["message"])

	code, body = upload(t, e, "Customers", "file", customerRows[:1])
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Spreadsheet has no data rows", body["message"])
}
