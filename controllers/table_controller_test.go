package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"qr-dine/controllers"
	"qr-dine/models"
	"qr-dine/stores"
)

func newTableRouter(store *stores.TableStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctrl := controllers.NewTableController(store)

	r := gin.New()
	r.GET("/tables/:number", ctrl.GetTableByNumber)
	r.GET("/admin/tables", ctrl.GetTables)
	r.POST("/admin/tables", ctrl.AddTable)
	r.DELETE("/admin/tables/:id", ctrl.RemoveTable)
	return r
}

func postTable(t *testing.T, r *gin.Engine, number int) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	body, _ := json.Marshal(models.AddTableRequest{Number: number})
	req := httptest.NewRequest(http.MethodPost, "/admin/tables", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestAddTableReturnsQRAndMenuLink(t *testing.T) {
	r := newTableRouter(stores.NewTableStore())

	w, resp := postTable(t, r, 5)

	assert.Equal(t, 201, w.Code)
	data := resp["data"].(map[string]any)
	assert.Equal(t, "5", data["qr_code"])
	assert.Equal(t, "/menu?table=5", data["menu_url"])
	assert.NotEmpty(t, data["id"])
}

func TestAddDuplicateTableReturns400(t *testing.T) {
	r := newTableRouter(stores.NewTableStore())

	postTable(t, r, 5)
	w, resp := postTable(t, r, 5)

	assert.Equal(t, 400, w.Code)
	assert.Equal(t, "Table number already exists", resp["message"])
}

func TestGetTableByNumber(t *testing.T) {
	store := stores.NewTableStore()
	r := newTableRouter(store)
	postTable(t, r, 4)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tables/4", nil))
	assert.Equal(t, 200, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tables/99", nil))
	assert.Equal(t, 404, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tables/abc", nil))
	assert.Equal(t, 400, w.Code)
}

func TestRemoveTableEndpoint(t *testing.T) {
	store := stores.NewTableStore()
	r := newTableRouter(store)

	_, resp := postTable(t, r, 2)
	id := resp["data"].(map[string]any)["id"].(string)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/tables/"+id, nil))

	assert.Equal(t, 200, w.Code)
	assert.Empty(t, store.Tables())
}
