package checkout

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/shopfront/internal/constants"
)

var (
	// ErrCheckoutInProgress 已有确认中的订单
	ErrCheckoutInProgress = errors.New("checkout already submitting")
	// ErrCheckoutConfirmed 订单已确认，需重置后才能再次提交
	ErrCheckoutConfirmed = errors.New("checkout already confirmed")
	// ErrInvalidTransition 当前状态不允许该操作
	ErrInvalidTransition = errors.New("invalid checkout transition")
	// ErrTaskSuperseded 确认任务已被重置或新的提交取代
	ErrTaskSuperseded = errors.New("checkout task superseded")
)

// State 结算状态
type State string

const (
	StateEditing    State = constants.CheckoutStateEditing
	StateSubmitting State = constants.CheckoutStateSubmitting
	StateConfirmed  State = constants.CheckoutStateConfirmed
)

// View 结算会话只读视图
type View struct {
	State   State  `json:"state"`
	Form    Form   `json:"form"`
	Errors  Errors `json:"errors"`
	OrderNo string `json:"order_no,omitempty"`
}

// Session 单个会话的结算状态机
// editing -> submitting -> confirmed，提交失败回到 editing
type Session struct {
	mu      sync.Mutex
	state   State
	form    Form
	errors  Errors
	orderNo string
	task    *Task
}

// NewSession 创建处于 editing 状态的会话
func NewSession() *Session {
	return &Session{state: StateEditing, errors: Errors{}}
}

// State 当前状态
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// StartFunc 在会话锁内启动确认任务，返回错误时会话保持 editing
type StartFunc func() (*Task, error)

// Submit 校验并提交表单，校验失败保持 editing 并返回错误。
// 校验通过后在同一把锁内调用 start 绑定确认任务，Reset 不会错过刚启动的任务。
func (s *Session) Submit(form Form, start StartFunc) (Errors, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateSubmitting:
		return nil, ErrCheckoutInProgress
	case StateConfirmed:
		return nil, ErrCheckoutConfirmed
	}

	form = form.WithDefaults()
	errs := Validate(form)
	s.form = form.Redacted()
	s.errors = errs
	if len(errs) > 0 {
		return copyErrors(errs), nil
	}
	var task *Task
	if start != nil {
		var err error
		if task, err = start(); err != nil {
			return Errors{}, err
		}
	}
	s.state = StateSubmitting
	s.task = task
	return Errors{}, nil
}

// Pending 当前绑定的确认任务，没有时返回 nil
func (s *Session) Pending() *Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.task
}

// Owns 任务是否仍是本次提交绑定的任务
func (s *Session) Owns(task *Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owns(task)
}

func (s *Session) owns(task *Task) bool {
	return task != nil && s.task == task
}

// Confirm 处理完成，进入 confirmed。任务已被重置或替换时返回 ErrTaskSuperseded
func (s *Session) Confirm(task *Task, orderNo string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.owns(task) {
		return ErrTaskSuperseded
	}
	if s.state != StateSubmitting {
		return ErrInvalidTransition
	}
	s.state = StateConfirmed
	s.orderNo = strings.TrimSpace(orderNo)
	s.errors = Errors{}
	return nil
}

// Fail 处理失败，回到 editing 并记录表单级错误
func (s *Session) Fail(task *Task, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.owns(task) {
		return ErrTaskSuperseded
	}
	s.state = StateEditing
	s.errors = Errors{FieldForm: message}
	s.orderNo = ""
	s.task = nil
	return nil
}

// Reset 取消处理中的任务并回到空白的 editing 状态，返回是否取消了任务
func (s *Session) Reset() bool {
	s.mu.Lock()
	task := s.task
	s.state = StateEditing
	s.form = Form{}
	s.errors = Errors{}
	s.orderNo = ""
	s.task = nil
	s.mu.Unlock()

	if task == nil {
		return false
	}
	return task.Cancel()
}

// View 返回当前快照
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		State:   s.state,
		Form:    s.form,
		Errors:  copyErrors(s.errors),
		OrderNo: s.orderNo,
	}
}

func copyErrors(errs Errors) Errors {
	out := make(Errors, len(errs))
	for k, v := range errs {
		out[k] = v
	}
	return out
}

// Registry 按会话持有结算状态机，长时间未访问的会话由 Sweep 回收
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*registryEntry
	now      func() time.Time
}

type registryEntry struct {
	session  *Session
	lastSeen time.Time
}

// NewRegistry 创建结算注册表
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*registryEntry), now: time.Now}
}

// Get 获取会话状态机，不存在时创建
func (r *Registry) Get(sessionID string) *Session {
	sessionID = strings.TrimSpace(sessionID)
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.sessions[sessionID]; ok {
		entry.lastSeen = r.now()
		return entry.session
	}
	s := NewSession()
	r.sessions[sessionID] = &registryEntry{session: s, lastSeen: r.now()}
	return s
}

// Peek 获取会话状态机，不存在时返回 false 且不创建
func (r *Registry) Peek(sessionID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.sessions[strings.TrimSpace(sessionID)]
	if !ok {
		return nil, false
	}
	entry.lastSeen = r.now()
	return entry.session, true
}

// Len 当前持有的会话数
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep 回收超过 idle 未访问的会话，确认中的会话保留，返回回收数量
func (r *Registry) Sweep(idle time.Duration) int {
	if idle <= 0 {
		return 0
	}
	cutoff := r.now().Add(-idle)
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, entry := range r.sessions {
		if entry.lastSeen.After(cutoff) {
			continue
		}
		if entry.session.State() == StateSubmitting {
			continue
		}
		delete(r.sessions, id)
		removed++
	}
	return removed
}
