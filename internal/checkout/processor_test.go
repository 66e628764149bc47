package checkout

import (
	"context"
	"errors"
	"regexp"
	"sync/atomic"
	"testing"
	"time"
)

func TestProcessorRunsConfirm(t *testing.T) {
	var calls int32
	task := NewProcessor(10 * time.Millisecond).Start(context.Background(), func(context.Context, *Task) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	if err := task.Wait(context.Background()); err != nil {
		t.Fatalf("wait failed: %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("confirm should run once, got %d", calls)
	}
	if task.Cancel() {
		t.Fatalf("finished task must not be cancellable")
	}
}

func TestProcessorCancelPreventsConfirm(t *testing.T) {
	var calls int32
	task := NewProcessor(time.Hour).Start(context.Background(), func(context.Context, *Task) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})
	if !task.Cancel() {
		t.Fatalf("pending task should be cancellable")
	}
	select {
	case <-task.Done():
	case <-time.After(time.Second):
		t.Fatalf("cancelled task should finish promptly")
	}
	if !errors.Is(task.Err(), ErrTaskCancelled) || !task.Cancelled() {
		t.Fatalf("want ErrTaskCancelled got %v", task.Err())
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("cancelled task must never confirm")
	}
}

func TestProcessorContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	task := NewProcessor(time.Hour).Start(ctx, nil)
	cancel()
	<-task.Done()
	if !task.Cancelled() {
		t.Fatalf("context cancellation should cancel the task")
	}
}

func TestProcessorPropagatesConfirmError(t *testing.T) {
	boom := errors.New("boom")
	task := NewProcessor(0).Start(context.Background(), func(context.Context, *Task) error { return boom })
	if err := task.Wait(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("want boom got %v", err)
	}
}

func TestGenerateOrderNo(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[1-9]\d{5}$`)
	for i := 0; i < 200; i++ {
		no := GenerateOrderNo("")
		if !pattern.MatchString(no) {
			t.Fatalf("unexpected order number %s", no)
		}
	}
	if no := GenerateOrderNo("TEST-"); !regexp.MustCompile(`^TEST-\d{6}$`).MatchString(no) {
		t.Fatalf("custom prefix not applied: %s", no)
	}
}
