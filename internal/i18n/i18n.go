package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	LocaleEnUS = "en-US"
	LocaleZhCN = "zh-CN"
	// DefaultLocale 未识别语言时使用
	DefaultLocale = LocaleEnUS

	localeContextKey = "locale"
)

// T 返回对应语言的文案，缺失时回退到默认语言，再回退到 key 本身
func T(locale, key string) string {
	if table, ok := messages[NormalizeLocale(locale)]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 格式化文案
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}

// NormalizeLocale 规范化语言标识，不支持的语言返回默认语言
func NormalizeLocale(locale string) string {
	value := strings.ToLower(strings.TrimSpace(locale))
	switch {
	case value == "":
		return DefaultLocale
	case strings.HasPrefix(value, "zh"):
		return LocaleZhCN
	case strings.HasPrefix(value, "en"):
		return LocaleEnUS
	default:
		return DefaultLocale
	}
}

// ResolveLocale 依次从上下文缓存、lang 参数、Accept-Language 解析语言
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if value, ok := c.Get(localeContextKey); ok {
		if locale, ok := value.(string); ok && locale != "" {
			return locale
		}
	}
	locale := DefaultLocale
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		locale = NormalizeLocale(lang)
	} else if header := c.GetHeader("Accept-Language"); header != "" {
		locale = NormalizeLocale(firstLanguageTag(header))
	}
	c.Set(localeContextKey, locale)
	return locale
}

// firstLanguageTag 取 Accept-Language 中的第一个语言，例如 "zh-CN,zh;q=0.9" -> "zh-CN"
func firstLanguageTag(header string) string {
	tag := header
	if idx := strings.IndexByte(tag, ','); idx >= 0 {
		tag = tag[:idx]
	}
	if idx := strings.IndexByte(tag, ';'); idx >= 0 {
		tag = tag[:idx]
	}
	return strings.TrimSpace(tag)
}
