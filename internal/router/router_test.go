package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/models"
	"github.com/shopfront/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *provider.Container) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:router_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	cfg := &config.Config{
		Server:  config.ServerConfig{Mode: "debug"},
		Session: config.SessionConfig{Secret: "router-test-secret", ExpireHours: 1},
	}
	c := provider.NewContainer(cfg, db)
	t.Cleanup(func() { c.Close(time.Second) })
	return SetupRouter(cfg, c), c
}

func TestRouterHealth(t *testing.T) {
	r, _ := setupTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) || !strings.Contains(w.Body.String(), `"redis":"disabled"`) {
		t.Fatalf("health check failed: %d %s", w.Code, w.Body.String())
	}
}

func TestRouterKeepsCartPerSessionToken(t *testing.T) {
	r, c := setupTestRouter(t)
	header := c.SessionService.Header()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":3,"quantity":2}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	token := w.Header().Get(header)
	if token == "" {
		t.Fatalf("first request should receive a session token")
	}
	if w.Header().Get(requestIDHeader) == "" {
		t.Fatalf("request id header should be set")
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req2.Header.Set(header, token)
	r.ServeHTTP(w2, req2)
	var resp struct {
		StatusCode int `json:"status_code"`
		Data       struct {
			TotalItems int    `json:"total_items"`
			TotalPrice string `json:"total_price"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 || resp.Data.TotalItems != 2 || resp.Data.TotalPrice != "259.98" {
		t.Fatalf("cart should persist for the same token, got %+v", resp)
	}

	// 新会话看不到其他会话的购物车
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	var fresh struct {
		Data struct {
			TotalItems int `json:"total_items"`
		} `json:"data"`
	}
	_ = json.Unmarshal(w3.Body.Bytes(), &fresh)
	if fresh.Data.TotalItems != 0 {
		t.Fatalf("new session should start with an empty cart")
	}
}

func TestRouterFeaturedRouteNotShadowedByID(t *testing.T) {
	r, _ := setupTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products/featured", nil))
	var resp struct {
		StatusCode int `json:"status_code"`
		Data       struct {
			Items []models.Product `json:"items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.StatusCode != 0 || len(resp.Data.Items) != 4 {
		t.Fatalf("featured want 4 products got %d (code %d)", len(resp.Data.Items), resp.StatusCode)
	}
}
