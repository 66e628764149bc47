package worker

import (
	"context"
	"sync"
	"time"

	"github.com/shopfront/internal/logger"
)

// Sweeper 可按空闲时长回收条目的会话注册表
type Sweeper interface {
	Sweep(idle time.Duration) int
}

// Janitor 定期回收长时间未访问的购物车与结算会话
type Janitor struct {
	interval  time.Duration
	idle      time.Duration
	carts     Sweeper
	checkouts Sweeper
	stop      chan struct{}
	stopOnce  sync.Once
}

// NewJanitor 创建回收服务，interval 或 idle 非正数时只等待停止
func NewJanitor(interval, idle time.Duration, carts, checkouts Sweeper) *Janitor {
	return &Janitor{
		interval:  interval,
		idle:      idle,
		carts:     carts,
		checkouts: checkouts,
		stop:      make(chan struct{}),
	}
}

// Name 服务名称
func (j *Janitor) Name() string {
	return "session_janitor"
}

// Start 按间隔执行回收，直到 ctx 结束或 Stop
func (j *Janitor) Start(ctx context.Context) error {
	if j.interval <= 0 || j.idle <= 0 {
		select {
		case <-ctx.Done():
		case <-j.stop:
		}
		return nil
	}
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.stop:
			return nil
		case <-ticker.C:
			j.SweepOnce()
		}
	}
}

// Stop 停止回收
func (j *Janitor) Stop(context.Context) error {
	j.stopOnce.Do(func() { close(j.stop) })
	return nil
}

// SweepOnce 立即执行一次回收，返回购物车与结算会话的回收数量
func (j *Janitor) SweepOnce() (carts int, checkouts int) {
	if j.carts != nil {
		carts = j.carts.Sweep(j.idle)
	}
	if j.checkouts != nil {
		checkouts = j.checkouts.Sweep(j.idle)
	}
	if carts > 0 || checkouts > 0 {
		logger.Infow("session_sweep", "carts", carts, "checkouts", checkouts, "idle", j.idle.String())
	}
	return carts, checkouts
}
