package cart

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopfront/internal/logger"
)

const snapshotTimeout = 2 * time.Second

// SnapshotLine 快照中的购物车行
type SnapshotLine struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// Snapshot 购物车持久化快照
type Snapshot struct {
	Lines []SnapshotLine `json:"lines"`
}

// Snapshotter 购物车快照的外部存储
type Snapshotter interface {
	LoadCart(ctx context.Context, sessionID string) (*Snapshot, bool, error)
	SaveCart(ctx context.Context, sessionID string, snapshot Snapshot) error
}

// Registry 按会话持有购物车，每个会话一个 Store，长时间未访问的由 Sweep 回收
type Registry struct {
	mu          sync.Mutex
	stores      map[string]*registryEntry
	lookup      ProductLookup
	snapshotter Snapshotter
	now         func() time.Time
}

type registryEntry struct {
	store    *Store
	lastSeen time.Time
}

// NewRegistry 创建购物车注册表，snapshotter 可为 nil
func NewRegistry(lookup ProductLookup, snapshotter Snapshotter) *Registry {
	return &Registry{
		stores:      make(map[string]*registryEntry),
		lookup:      lookup,
		snapshotter: snapshotter,
		now:         time.Now,
	}
}

// Get 获取会话购物车，首次访问时创建并尝试从快照恢复
func (r *Registry) Get(ctx context.Context, sessionID string) *Store {
	sessionID = strings.TrimSpace(sessionID)
	if store, ok := r.cached(sessionID); ok {
		return store
	}
	store, _ := r.load(ctx, sessionID)
	return r.insert(sessionID, store)
}

// Find 获取会话购物车，内存与快照中都不存在时返回 false 且不创建
func (r *Registry) Find(ctx context.Context, sessionID string) (*Store, bool) {
	sessionID = strings.TrimSpace(sessionID)
	if store, ok := r.cached(sessionID); ok {
		return store, true
	}
	store, hit := r.load(ctx, sessionID)
	if !hit {
		return nil, false
	}
	return r.insert(sessionID, store), true
}

// Drop 丢弃会话购物车
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, strings.TrimSpace(sessionID))
}

// Len 当前持有的购物车数量
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.stores)
}

// Sweep 回收超过 idle 未访问的购物车，快照仍保留在外部存储中，返回回收数量
func (r *Registry) Sweep(idle time.Duration) int {
	if idle <= 0 {
		return 0
	}
	cutoff := r.now().Add(-idle)
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, entry := range r.stores {
		if entry.lastSeen.After(cutoff) {
			continue
		}
		delete(r.stores, id)
		removed++
	}
	return removed
}

func (r *Registry) cached(sessionID string) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.stores[sessionID]
	if !ok {
		return nil, false
	}
	entry.lastSeen = r.now()
	return entry.store, true
}

// load 在锁外读取快照，慢速的外部存储不会阻塞其他会话
func (r *Registry) load(ctx context.Context, sessionID string) (*Store, bool) {
	store := NewStore()
	if r.snapshotter == nil || sessionID == "" {
		return store, false
	}
	if ctx == nil {
		ctx = context.Background()
	}
	snapshot, hit, err := r.snapshotter.LoadCart(ctx, sessionID)
	if err != nil {
		logger.Warnw("cart_snapshot_load_failed", "session_id", sessionID, "error", err)
		return store, false
	}
	if !hit || snapshot == nil {
		return store, false
	}
	store.Restore(*snapshot, r.lookup)
	logger.Debugw("cart_snapshot_restored", "session_id", sessionID, "lines", len(snapshot.Lines))
	return store, true
}

// insert 加锁后再次检查，并发加载时以先写入的为准
func (r *Registry) insert(sessionID string, store *Store) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.stores[sessionID]; ok {
		entry.lastSeen = r.now()
		return entry.store
	}
	if r.snapshotter != nil && sessionID != "" {
		store.OnChange(func(snapshot Snapshot) {
			r.save(sessionID, snapshot)
		})
	}
	r.stores[sessionID] = &registryEntry{store: store, lastSeen: r.now()}
	return store
}

func (r *Registry) save(sessionID string, snapshot Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()
	if err := r.snapshotter.SaveCart(ctx, sessionID, snapshot); err != nil {
		logger.Warnw("cart_snapshot_save_failed", "session_id", sessionID, "error", err)
	}
}
