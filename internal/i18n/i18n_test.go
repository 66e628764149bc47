package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestT(t *testing.T) {
	if got := T(LocaleZhCN, "error.cart_empty"); got != "购物车为空" {
		t.Fatalf("unexpected zh-CN message %s", got)
	}
	if got := T("fr-FR", "error.cart_empty"); got != "Your cart is empty" {
		t.Fatalf("unknown locale should fall back to en-US, got %s", got)
	}
	if got := T(LocaleEnUS, "error.unknown_key"); got != "error.unknown_key" {
		t.Fatalf("missing key should return key, got %s", got)
	}
	if got := Sprintf(LocaleEnUS, "checkout.confirmation_email", "a@b.co"); got != "A confirmation email has been sent to a@b.co." {
		t.Fatalf("unexpected formatted message %s", got)
	}
}

func TestMessageTablesHaveSameKeys(t *testing.T) {
	for key := range messages[LocaleEnUS] {
		if _, ok := messages[LocaleZhCN][key]; !ok {
			t.Fatalf("zh-CN missing key %s", key)
		}
	}
	for key := range messages[LocaleZhCN] {
		if _, ok := messages[LocaleEnUS][key]; !ok {
			t.Fatalf("en-US missing key %s", key)
		}
	}
}

func TestResolveLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{name: "default", target: "/", want: LocaleEnUS},
		{name: "accept language", target: "/", header: "zh-CN,zh;q=0.9,en;q=0.8", want: LocaleZhCN},
		{name: "query wins", target: "/?lang=en", header: "zh-CN", want: LocaleEnUS},
		{name: "unsupported", target: "/", header: "de-DE", want: LocaleEnUS},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", tc.target, nil)
			if tc.header != "" {
				c.Request.Header.Set("Accept-Language", tc.header)
			}
			if got := ResolveLocale(c); got != tc.want {
				t.Fatalf("locale want %s got %s", tc.want, got)
			}
		})
	}
}
