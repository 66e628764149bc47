package checkout

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTaskCancelled 任务在执行前被取消
var ErrTaskCancelled = errors.New("checkout task cancelled")

// ConfirmFunc 处理完成后执行的确认动作，task 为当前任务本身，用于核对归属
type ConfirmFunc func(ctx context.Context, task *Task) error

type taskStatus int

const (
	taskPending taskStatus = iota
	taskRunning
	taskCancelled
	taskDone
)

// Task 一次延迟确认任务，Done 关闭表示任务结束（完成、失败或取消）
type Task struct {
	mu     sync.Mutex
	status taskStatus
	err    error
	done   chan struct{}
	cancel chan struct{}
}

// Done 结束信号
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Err 任务结束后的错误，取消时为 ErrTaskCancelled
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Cancel 取消尚未开始执行的任务，确认动作已开始或已结束时返回 false
func (t *Task) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != taskPending {
		return false
	}
	t.status = taskCancelled
	t.err = ErrTaskCancelled
	close(t.cancel)
	return true
}

// Cancelled 是否已取消
func (t *Task) Cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status == taskCancelled
}

// Wait 阻塞至任务结束或 ctx 结束
func (t *Task) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Task) begin() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.status != taskPending {
		return false
	}
	t.status = taskRunning
	return true
}

func (t *Task) finish(err error) {
	t.mu.Lock()
	if t.status == taskRunning {
		t.status = taskDone
		t.err = err
	}
	t.mu.Unlock()
	close(t.done)
}

// Processor 模拟订单处理耗时，延迟后执行确认动作
type Processor struct {
	delay time.Duration
}

// NewProcessor 创建处理器，delay < 0 视为 0
func NewProcessor(delay time.Duration) *Processor {
	if delay < 0 {
		delay = 0
	}
	return &Processor{delay: delay}
}

// Delay 处理耗时
func (p *Processor) Delay() time.Duration {
	return p.delay
}

// Start 异步启动任务，ctx 结束等同于取消
func (p *Processor) Start(ctx context.Context, confirm ConfirmFunc) *Task {
	if ctx == nil {
		ctx = context.Background()
	}
	task := &Task{
		done:   make(chan struct{}),
		cancel: make(chan struct{}),
	}
	go p.run(ctx, task, confirm)
	return task
}

func (p *Processor) run(ctx context.Context, task *Task, confirm ConfirmFunc) {
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-task.cancel:
		close(task.done)
		return
	case <-ctx.Done():
		task.Cancel()
		close(task.done)
		return
	}

	if !task.begin() {
		close(task.done)
		return
	}
	var err error
	if confirm != nil {
		err = confirm(context.WithoutCancel(ctx), task)
	}
	task.finish(err)
}
