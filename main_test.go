package main

import (
	"bytes"
	"encoding/json"
	"gin-listme/infra"
	"gin-listme/models"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// インメモリDBはコネクションごとに独立するため1本に固定する
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Credential{}, &models.List{}, &models.Item{}))

	cfg := &infra.Config{SecretKey: "test-secret", Port: "8080"}
	return setupRouter(db, cfg)
}

func doRequest(t *testing.T, r *gin.Engine, method string, path string, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	response := map[string]interface{}{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

func registerAndAuthenticate(t *testing.T, r *gin.Engine, name string, email string, password string) string {
	t.Helper()

	w, _ := doRequest(t, r, http.MethodPost, "/user", "", gin.H{"name": name, "email": email, "password": password})
	require.Equal(t, http.StatusCreated, w.Code)

	w, response := doRequest(t, r, http.MethodPost, "/user/authenticate", "", gin.H{"email": email, "password": password})
	require.Equal(t, http.StatusOK, w.Code)
	token, ok := response["token"].(string)
	require.True(t, ok)
	return token
}

func TestEndToEndScenario(t *testing.T) {
	r := setupTestRouter(t)

	// 登録
	w, response := doRequest(t, r, http.MethodPost, "/user", "", gin.H{"name": "A", "email": "a@x.com", "password": "p"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, response["success"])
	user := response["user"].(map[string]interface{})
	assert.Equal(t, "a@x.com", user["email"])

	// 認証
	w, response = doRequest(t, r, http.MethodPost, "/user/authenticate", "", gin.H{"email": "a@x.com", "password": "p"})
	require.Equal(t, http.StatusOK, w.Code)
	token := response["token"].(string)
	require.NotEmpty(t, token)

	// リスト作成
	w, response = doRequest(t, r, http.MethodPost, "/list", token, gin.H{"title": "Groceries"})
	require.Equal(t, http.StatusCreated, w.Code)
	list := response["list"].(map[string]interface{})
	listID := uint(list["id"].(float64))
	require.NotZero(t, listID)

	// アイテム追加
	w, response = doRequest(t, r, http.MethodPost, "/item", token, gin.H{"listId": listID, "title": "Milk", "complete": true})
	require.Equal(t, http.StatusCreated, w.Code)
	item := response["item"].(map[string]interface{})
	assert.Equal(t, "Milk", item["title"])

	// リスト取得でアイテムが1件見える
	w, response = doRequest(t, r, http.MethodGet, listPath(listID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list = response["list"].(map[string]interface{})
	items := list["items"].([]interface{})
	require.Len(t, items, 1)
	assert.Equal(t, "Milk", items[0].(map[string]interface{})["title"])

	// リスト削除後は見つからない
	w, _ = doRequest(t, r, http.MethodDelete, listPath(listID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, response = doRequest(t, r, http.MethodGet, listPath(listID), token, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "List not found", response["message"])
}

func listPath(listID uint) string {
	return "/list/" + strconv.FormatUint(uint64(listID), 10)
}

func itemPath(itemID uint) string {
	return "/item/" + strconv.FormatUint(uint64(itemID), 10)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupTestRouter(t)

	w, _ := doRequest(t, r, http.MethodPost, "/user", "", gin.H{"name": "A", "email": "a@x.com", "password": "p"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, response := doRequest(t, r, http.MethodPost, "/user", "", gin.H{"name": "B", "email": "a@x.com", "password": "q"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, response["success"])
}

func TestRegisterMissingFields(t *testing.T) {
	r := setupTestRouter(t)

	for _, body := range []gin.H{
		{"email": "a@x.com", "password": "p"},
		{"name": "A", "password": "p"},
		{"name": "A", "email": "a@x.com"},
	} {
		w, _ := doRequest(t, r, http.MethodPost, "/user", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := setupTestRouter(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/user"},
		{http.MethodDelete, "/user"},
		{http.MethodPost, "/list"},
		{http.MethodGet, "/list"},
		{http.MethodGet, "/list/details"},
		{http.MethodGet, "/list/1"},
		{http.MethodPatch, "/list/1"},
		{http.MethodDelete, "/list/1"},
		{http.MethodPost, "/item"},
		{http.MethodPatch, "/item/1"},
		{http.MethodDelete, "/item/1"},
	} {
		w, _ := doRequest(t, r, route.method, route.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)

		w, _ = doRequest(t, r, route.method, route.path, "garbage-token", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestAddItemRejectsMissingComplete(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndAuthenticate(t, r, "A", "a@x.com", "p")

	w, response := doRequest(t, r, http.MethodPost, "/list", token, gin.H{"title": "Groceries"})
	require.Equal(t, http.StatusCreated, w.Code)
	listID := uint(response["list"].(map[string]interface{})["id"].(float64))

	// complete未指定は400
	w, _ = doRequest(t, r, http.MethodPost, "/item", token, gin.H{"listId": listID, "title": "Milk"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// complete:falseも「未指定」として400になる（既存APIと互換の境界仕様）
	w, _ = doRequest(t, r, http.MethodPost, "/item", token, gin.H{"listId": listID, "title": "Milk", "complete": false})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCrossUserAccessOverHTTP(t *testing.T) {
	r := setupTestRouter(t)
	tokenA := registerAndAuthenticate(t, r, "A", "a@x.com", "p")
	tokenB := registerAndAuthenticate(t, r, "B", "b@x.com", "q")

	w, response := doRequest(t, r, http.MethodPost, "/list", tokenA, gin.H{"title": "Groceries"})
	require.Equal(t, http.StatusCreated, w.Code)
	listID := uint(response["list"].(map[string]interface{})["id"].(float64))

	w, response = doRequest(t, r, http.MethodPost, "/item", tokenA, gin.H{"listId": listID, "title": "Milk", "complete": true})
	require.Equal(t, http.StatusCreated, w.Code)
	itemID := uint(response["item"].(map[string]interface{})["id"].(float64))

	// 他ユーザーには存在しないのと同じ応答が返る
	w, _ = doRequest(t, r, http.MethodGet, listPath(listID), tokenB, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPatch, listPath(listID), tokenB, gin.H{"title": "Stolen"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodDelete, listPath(listID), tokenB, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodPatch, itemPath(itemID), tokenB, gin.H{"title": "Stolen", "complete": true})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodDelete, itemPath(itemID), tokenB, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Bのリスト一覧にAのリストは現れない
	w, response = doRequest(t, r, http.MethodGet, "/list", tokenB, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, response["lists"])
}

func TestListDetails(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndAuthenticate(t, r, "A", "a@x.com", "p")

	w, response := doRequest(t, r, http.MethodPost, "/list", token, gin.H{"title": "Groceries"})
	require.Equal(t, http.StatusCreated, w.Code)
	listID := uint(response["list"].(map[string]interface{})["id"].(float64))

	w, _ = doRequest(t, r, http.MethodPost, "/list", token, gin.H{"title": "Someday"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doRequest(t, r, http.MethodPost, "/item", token, gin.H{"listId": listID, "title": "Milk", "complete": true})
	require.Equal(t, http.StatusCreated, w.Code)

	w, response = doRequest(t, r, http.MethodGet, "/list/details", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	lists := response["lists"].([]interface{})
	require.Len(t, lists, 2)

	first := lists[0].(map[string]interface{})
	require.Len(t, first["items"].([]interface{}), 1)

	// アイテムのないリストもitems: []で含まれる
	second := lists[1].(map[string]interface{})
	items, ok := second["items"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, items)
}

func TestDeleteAccountOverHTTP(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndAuthenticate(t, r, "A", "a@x.com", "p")

	w, response := doRequest(t, r, http.MethodPost, "/list", token, gin.H{"title": "Groceries"})
	require.Equal(t, http.StatusCreated, w.Code)
	listID := uint(response["list"].(map[string]interface{})["id"].(float64))
	w, _ = doRequest(t, r, http.MethodPost, "/item", token, gin.H{"listId": listID, "title": "Milk", "complete": true})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = doRequest(t, r, http.MethodDelete, "/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// 削除後は有効期限内のトークンも使えない
	w, _ = doRequest(t, r, http.MethodGet, "/user", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 再認証もできない
	w, _ = doRequest(t, r, http.MethodPost, "/user/authenticate", "", gin.H{"email": "a@x.com", "password": "p"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 同じメールで再登録できる
	w, _ = doRequest(t, r, http.MethodPost, "/user", "", gin.H{"name": "A2", "email": "a@x.com", "password": "p2"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestProfile(t *testing.T) {
	r := setupTestRouter(t)
	token := registerAndAuthenticate(t, r, "A", "a@x.com", "p")

	w, response := doRequest(t, r, http.MethodGet, "/user", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := response["user"].(map[string]interface{})
	assert.Equal(t, "A", user["name"])
	assert.Equal(t, "a@x.com", user["email"])
}
