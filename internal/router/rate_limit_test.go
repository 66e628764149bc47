package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopfront/internal/config"
	"github.com/shopfront/internal/service"

	"github.com/gin-gonic/gin"
)

func TestKeyBySession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/checkout", nil)
	c.Request.RemoteAddr = "1.2.3.4:5678"

	if key := KeyBySession(c); key != "ip:1.2.3.4" {
		t.Fatalf("without session key want ip:1.2.3.4 got %s", key)
	}
	c.Set("session_id", "sess-1")
	if key := KeyBySession(c); key != "sess:sess-1|1.2.3.4" {
		t.Fatalf("key want sess:sess-1|1.2.3.4 got %s", key)
	}
	// 省略令牌时每次都会签发新会话，不能因此得到新的限流桶
	c.Set("session_issued", true)
	if key := KeyBySession(c); key != "ip:1.2.3.4" {
		t.Fatalf("issued session key want ip:1.2.3.4 got %s", key)
	}
}

func TestSessionMiddlewareMarksIssuedSessionsForRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := service.NewSessionService(&config.SessionConfig{Secret: "test-secret"})

	r := gin.New()
	r.Use(SessionMiddleware(sessions))
	r.POST("/checkout", func(c *gin.Context) {
		c.String(http.StatusOK, KeyBySession(c))
	})

	first := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.RemoteAddr = "9.9.9.9:1000"
	r.ServeHTTP(first, req)
	second := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.RemoteAddr = "9.9.9.9:1000"
	r.ServeHTTP(second, req)
	if first.Body.String() != "ip:9.9.9.9" || second.Body.String() != first.Body.String() {
		t.Fatalf("tokenless requests must share the IP bucket, got %q and %q", first.Body.String(), second.Body.String())
	}

	token := first.Header().Get(sessions.Header())
	withToken := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/checkout", nil)
	req.RemoteAddr = "9.9.9.9:1000"
	req.Header.Set(sessions.Header(), token)
	r.ServeHTTP(withToken, req)
	if !strings.HasPrefix(withToken.Body.String(), "sess:") || !strings.HasSuffix(withToken.Body.String(), "|9.9.9.9") {
		t.Fatalf("returning session should key on session and IP, got %q", withToken.Body.String())
	}
}

func TestRateLimitMiddlewareWithoutClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware(nil, RateLimitRule{WindowSeconds: 60, MaxRequests: 1}, KeyByIP))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok":true`) {
		t.Fatalf("expected handler response body, got %s", w.Body.String())
	}
}

func TestToInt64(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  int64
		ok    bool
	}{
		{name: "int64", input: int64(10), want: 10, ok: true},
		{name: "int", input: int(11), want: 11, ok: true},
		{name: "uint8", input: uint8(12), want: 12, ok: true},
		{name: "float64", input: float64(13.9), want: 13, ok: true},
		{name: "string", input: "bad", want: 0, ok: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toInt64(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok want %v got %v", tc.ok, ok)
			}
			if got != tc.want {
				t.Fatalf("value want %d got %d", tc.want, got)
			}
		})
	}
}
