package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopfront/internal/cart"
)

const cartStateCacheTTL = 7 * 24 * time.Hour

// CartStateStore 基于 Redis 的购物车快照存储
type CartStateStore struct {
	ttl time.Duration
}

// NewCartStateStore 创建购物车快照存储，ttl <= 0 使用默认值
func NewCartStateStore(ttl time.Duration) *CartStateStore {
	if ttl <= 0 {
		ttl = cartStateCacheTTL
	}
	return &CartStateStore{ttl: ttl}
}

func cartStateKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", strings.TrimSpace(sessionID))
}

// LoadCart 读取购物车快照
func (s *CartStateStore) LoadCart(ctx context.Context, sessionID string) (*cart.Snapshot, bool, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, false, nil
	}
	var snapshot cart.Snapshot
	hit, err := GetJSON(ctx, cartStateKey(sessionID), &snapshot)
	if err != nil || !hit {
		return nil, false, err
	}
	return &snapshot, true, nil
}

// SaveCart 写入购物车快照，空购物车直接删除键
func (s *CartStateStore) SaveCart(ctx context.Context, sessionID string, snapshot cart.Snapshot) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	if len(snapshot.Lines) == 0 {
		return Del(ctx, cartStateKey(sessionID))
	}
	return SetJSON(ctx, cartStateKey(sessionID), snapshot, s.ttl)
}
