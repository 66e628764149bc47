package checkout

import (
	"context"
	"errors"
	"testing"
	"time"
)

// idleStart 启动一个长延迟的空任务，便于测试状态机本身
func idleStart(t *testing.T) (StartFunc, func() *Task) {
	t.Helper()
	var task *Task
	start := func() (*Task, error) {
		task = NewProcessor(time.Hour).Start(context.Background(), nil)
		return task, nil
	}
	t.Cleanup(func() {
		if task != nil {
			task.Cancel()
		}
	})
	return start, func() *Task { return task }
}

func TestSessionInvalidSubmitStaysEditing(t *testing.T) {
	s := NewSession()
	called := false
	errs, err := s.Submit(Form{}, func() (*Task, error) {
		called = true
		return nil, nil
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if len(errs) == 0 {
		t.Fatalf("empty form should fail validation")
	}
	if called {
		t.Fatalf("invalid form must not start a task")
	}
	view := s.View()
	if view.State != StateEditing || len(view.Errors) != len(errs) {
		t.Fatalf("want editing with errors got %+v", view)
	}
}

func TestSessionHappyPath(t *testing.T) {
	s := NewSession()
	start, current := idleStart(t)
	errs, err := s.Submit(validForm(), start)
	if err != nil || len(errs) != 0 {
		t.Fatalf("valid submit failed: %v %v", errs, err)
	}
	if s.State() != StateSubmitting {
		t.Fatalf("want submitting got %s", s.State())
	}
	if s.Pending() != current() {
		t.Fatalf("task should be bound at submit")
	}
	if _, err := s.Submit(validForm(), start); !errors.Is(err, ErrCheckoutInProgress) {
		t.Fatalf("double submit want ErrCheckoutInProgress got %v", err)
	}
	if err := s.Confirm(current(), "ORD-123456"); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	view := s.View()
	if view.State != StateConfirmed || view.OrderNo != "ORD-123456" {
		t.Fatalf("unexpected view %+v", view)
	}
	if view.Form.CardNumber != "" || view.Form.CVV != "" {
		t.Fatalf("card data must not be kept")
	}
	if _, err := s.Submit(validForm(), start); !errors.Is(err, ErrCheckoutConfirmed) {
		t.Fatalf("submit after confirm want ErrCheckoutConfirmed got %v", err)
	}
}

func TestSessionStartErrorStaysEditing(t *testing.T) {
	s := NewSession()
	boom := errors.New("cart empty")
	if _, err := s.Submit(validForm(), func() (*Task, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("want start error got %v", err)
	}
	if s.State() != StateEditing || s.Pending() != nil {
		t.Fatalf("failed start must stay editing, got %+v", s.View())
	}
}

func TestSessionConfirmRequiresOwnedTask(t *testing.T) {
	s := NewSession()
	if err := s.Confirm(nil, "ORD-1"); !errors.Is(err, ErrTaskSuperseded) {
		t.Fatalf("want ErrTaskSuperseded got %v", err)
	}
	stray := NewProcessor(time.Hour).Start(context.Background(), nil)
	defer stray.Cancel()
	start, _ := idleStart(t)
	_, _ = s.Submit(validForm(), start)
	if err := s.Confirm(stray, "ORD-1"); !errors.Is(err, ErrTaskSuperseded) {
		t.Fatalf("foreign task want ErrTaskSuperseded got %v", err)
	}
	if s.State() != StateSubmitting {
		t.Fatalf("foreign confirm must not change state, got %s", s.State())
	}
}

func TestSessionFailReturnsToEditing(t *testing.T) {
	s := NewSession()
	start, current := idleStart(t)
	_, _ = s.Submit(validForm(), start)
	if err := s.Fail(current(), "Order could not be placed"); err != nil {
		t.Fatalf("fail failed: %v", err)
	}
	view := s.View()
	if view.State != StateEditing || view.Errors[FieldForm] == "" {
		t.Fatalf("unexpected view %+v", view)
	}
	if s.Pending() != nil {
		t.Fatalf("failed task should be released")
	}
}

func TestSessionResetCancelsPendingTask(t *testing.T) {
	s := NewSession()
	var task *Task
	_, _ = s.Submit(validForm(), func() (*Task, error) {
		task = NewProcessor(time.Hour).Start(context.Background(), func(_ context.Context, task *Task) error {
			return s.Confirm(task, "ORD-999999")
		})
		return task, nil
	})
	if !s.Reset() {
		t.Fatalf("reset should cancel the pending task")
	}
	<-task.Done()
	if s.State() != StateEditing || s.View().OrderNo != "" {
		t.Fatalf("reset session must be blank editing, got %+v", s.View())
	}
}

func TestSessionStaleTaskCannotConfirmResubmission(t *testing.T) {
	s := NewSession()
	start, current := idleStart(t)
	_, _ = s.Submit(validForm(), start)
	old := current()
	s.Reset()

	_, _ = s.Submit(validForm(), start)
	fresh := current()
	if fresh == old {
		t.Fatalf("resubmit should bind a new task")
	}
	if err := s.Confirm(old, "ORD-111111"); !errors.Is(err, ErrTaskSuperseded) {
		t.Fatalf("stale confirm want ErrTaskSuperseded got %v", err)
	}
	if err := s.Fail(old, "late failure"); !errors.Is(err, ErrTaskSuperseded) {
		t.Fatalf("stale fail want ErrTaskSuperseded got %v", err)
	}
	if s.State() != StateSubmitting || s.Pending() != fresh {
		t.Fatalf("stale task must not touch the resubmission, got %+v", s.View())
	}
	if err := s.Confirm(fresh, "ORD-222222"); err != nil {
		t.Fatalf("fresh confirm failed: %v", err)
	}
	if got := s.View().OrderNo; got != "ORD-222222" {
		t.Fatalf("want ORD-222222 got %s", got)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Peek("a"); ok {
		t.Fatalf("unknown session should not exist")
	}
	if r.Len() != 0 {
		t.Fatalf("peek must not create sessions")
	}
	a := r.Get("a")
	if r.Get(" a ") != a {
		t.Fatalf("same session should return the same state machine")
	}
	if r.Get("b") == a {
		t.Fatalf("sessions must not share state")
	}
}

func TestRegistrySweepEvictsIdleSessions(t *testing.T) {
	r := NewRegistry()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	r.Get("idle")
	busy := r.Get("busy")
	start, _ := idleStart(t)
	_, _ = busy.Submit(validForm(), start)

	now = now.Add(30 * time.Minute)
	r.Get("fresh")
	now = now.Add(40 * time.Minute)

	if removed := r.Sweep(time.Hour); removed != 1 {
		t.Fatalf("want 1 removed got %d", removed)
	}
	if _, ok := r.Peek("idle"); ok {
		t.Fatalf("idle session should be evicted")
	}
	if _, ok := r.Peek("busy"); !ok {
		t.Fatalf("submitting session must be kept")
	}
	if _, ok := r.Peek("fresh"); !ok {
		t.Fatalf("recent session must be kept")
	}
	if r.Sweep(0) != 0 {
		t.Fatalf("zero idle disables sweeping")
	}
}
