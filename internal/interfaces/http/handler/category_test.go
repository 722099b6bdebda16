package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pos/backend/internal/application/bulk"
	catalogapp "github.com/pos/backend/internal/application/catalog"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/pos/backend/internal/infrastructure/persistence"
	"github.com/pos/backend/internal/interfaces/http/dto"
	"github.com/pos/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires the full stack over an in-memory store
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })

	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	scope := persistence.NewGormTransactionScope(db.DB)

	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo, scope)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, scope)
	importService := bulk.NewImportService(scope)
	exportService := bulk.NewExportService(categoryRepo, productRepo)

	engine := gin.New()
	router.NewRouter(engine).
		Register(NewCategoryHandler(categoryService)).
		Register(NewProductHandler(productService)).
		Register(NewBulkHandler(importService, exportService)).
		Register(NewSystemHandler(db)).
		Setup()
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func createCategoryHTTP(t *testing.T, engine *gin.Engine, name string) uint {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/api/v1/categories", gin.H{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]any)
	return uint(data["id"].(float64))
}

func TestCategoryHandler_Create(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/categories", gin.H{"name": "Drinks"})
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "Drinks", data["name"])
	assert.NotZero(t, data["id"])
}

func TestCategoryHandler_Create_DuplicateIsConflict(t *testing.T) {
	engine := newTestServer(t)
	createCategoryHTTP(t, engine, "Drinks")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/categories", gin.H{"name": "drinks"})
	require.Equal(t, http.StatusConflict, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "ALREADY_EXISTS", resp.Error.Code)
}

func TestCategoryHandler_Create_MissingNameIsBadRequest(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPost, "/api/v1/categories", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryHandler_Update(t *testing.T) {
	engine := newTestServer(t)
	id := createCategoryHTTP(t, engine, "Drinks")

	w := doJSON(t, engine, http.MethodPut, fmt.Sprintf("/api/v1/categories/%d", id), gin.H{"name": "Beverages"})
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "Beverages", data["name"])
}

func TestCategoryHandler_Update_NotFound(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodPut, "/api/v1/categories/999", gin.H{"name": "Beverages"})
	require.Equal(t, http.StatusNotFound, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestCategoryHandler_Delete_InUseIsConflict(t *testing.T) {
	engine := newTestServer(t)
	id := createCategoryHTTP(t, engine, "Drinks")

	w := doJSON(t, engine, http.MethodPost, "/api/v1/products", gin.H{
		"name":         "Cola",
		"retail_price": "10000",
		"category_id":  id,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", id), nil)
	require.Equal(t, http.StatusConflict, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, "CATEGORY_IN_USE", resp.Error.Code)
}

func TestCategoryHandler_Delete(t *testing.T) {
	engine := newTestServer(t)
	id := createCategoryHTTP(t, engine, "Drinks")

	w := doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodDelete, fmt.Sprintf("/api/v1/categories/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryHandler_CheckName(t *testing.T) {
	engine := newTestServer(t)
	id := createCategoryHTTP(t, engine, "Drinks")

	w := doJSON(t, engine, http.MethodGet, "/api/v1/categories/check-name/DRINKS", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, true, resp.Data.(map[string]any)["exists"])

	w = doJSON(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/categories/check-name/drinks?excludeId=%d", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeResponse(t, w)
	assert.Equal(t, false, resp.Data.(map[string]any)["exists"])
}

func TestCategoryHandler_List(t *testing.T) {
	engine := newTestServer(t)
	createCategoryHTTP(t, engine, "Snacks")
	createCategoryHTTP(t, engine, "Drinks")

	w := doJSON(t, engine, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	items := resp.Data.([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "Drinks", items[0].(map[string]any)["name"])
}

func TestSystemHandler_Health(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, "ok", resp.Data.(map[string]any)["status"])
}
