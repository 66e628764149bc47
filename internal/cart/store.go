package cart

import (
	"errors"
	"sync"

	"github.com/shopfront/internal/constants"
	"github.com/shopfront/internal/models"

	"github.com/shopspring/decimal"
)

// ErrInvalidQuantity 数量必须为正整数且单行不超过 constants.MaxCartLineQuantity
var ErrInvalidQuantity = errors.New("cart quantity must be between 1 and the line limit")

// Line 购物车行，同一商品最多一行
type Line struct {
	Product  models.Product
	Quantity int
}

// ProductID 商品ID
func (l Line) ProductID() uint {
	return l.Product.ID
}

// Total 行小计（未取整）
func (l Line) Total() decimal.Decimal {
	return l.Product.Price.Decimal.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// ProductLookup 按 ID 查找商品
type ProductLookup func(id uint) (*models.Product, bool)

// Store 单个会话的购物车状态
// 所有变更在锁内完成，返回前对后续读取可见
type Store struct {
	mu       sync.RWMutex
	lines    []Line
	onChange func(Snapshot)
}

// NewStore 创建空购物车
func NewStore() *Store {
	return &Store{lines: make([]Line, 0)}
}

// Add 加入商品，已存在则累加数量；quantity 非法或累加后超过单行上限时拒绝且不改变状态
func (s *Store) Add(product models.Product, quantity int) error {
	if quantity <= 0 || quantity > constants.MaxCartLineQuantity {
		return ErrInvalidQuantity
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if pos := s.indexOf(product.ID); pos >= 0 {
		if s.lines[pos].Quantity > constants.MaxCartLineQuantity-quantity {
			return ErrInvalidQuantity
		}
		s.lines[pos].Quantity += quantity
	} else {
		s.lines = append(s.lines, Line{Product: product.Clone(), Quantity: quantity})
	}
	s.notify()
	return nil
}

// UpdateQuantity 设置绝对数量，quantity <= 0 等同于 Remove，商品不存在时不做处理
func (s *Store) UpdateQuantity(productID uint, quantity int) error {
	if quantity > constants.MaxCartLineQuantity {
		return ErrInvalidQuantity
	}
	if quantity <= 0 {
		s.Remove(productID)
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := s.indexOf(productID)
	if pos < 0 {
		return nil
	}
	s.lines[pos].Quantity = quantity
	s.notify()
	return nil
}

// Remove 删除商品行
func (s *Store) Remove(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := s.indexOf(productID)
	if pos < 0 {
		return
	}
	s.lines = append(s.lines[:pos], s.lines[pos+1:]...)
	s.notify()
}

// Clear 清空购物车
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = make([]Line, 0)
	s.notify()
}

// Lines 按加入顺序返回购物车行副本
func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := make([]Line, 0, len(s.lines))
	for _, line := range s.lines {
		lines = append(lines, Line{Product: line.Product.Clone(), Quantity: line.Quantity})
	}
	return lines
}

// Quantity 返回商品当前数量，不存在时为 0
func (s *Store) Quantity(productID uint) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if pos := s.indexOf(productID); pos >= 0 {
		return s.lines[pos].Quantity
	}
	return 0
}

// IsEmpty 是否为空
func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines) == 0
}

// TotalItems 商品总件数，每次读取时重新计算
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice 商品总价，每次读取时重新计算
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, line := range s.lines {
		total = total.Add(line.Total())
	}
	return total
}

// Snapshot 导出购物车快照
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Restore 用快照替换当前内容，目录中已不存在的商品或非法数量会被跳过，超出单行上限的数量截断
func (s *Store) Restore(snapshot Snapshot, lookup ProductLookup) {
	if lookup == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]Line, 0, len(snapshot.Lines))
	seen := make(map[uint]int, len(snapshot.Lines))
	for _, item := range snapshot.Lines {
		if item.Quantity <= 0 {
			continue
		}
		if pos, ok := seen[item.ProductID]; ok {
			lines[pos].Quantity = clampQuantity(lines[pos].Quantity, item.Quantity)
			continue
		}
		product, ok := lookup(item.ProductID)
		if !ok || product == nil {
			continue
		}
		seen[item.ProductID] = len(lines)
		lines = append(lines, Line{Product: product.Clone(), Quantity: clampQuantity(0, item.Quantity)})
	}
	s.lines = lines
}

// OnChange 注册变更回调，回调在持锁期间按变更顺序执行
func (s *Store) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

func clampQuantity(current, add int) int {
	if add >= constants.MaxCartLineQuantity-current {
		return constants.MaxCartLineQuantity
	}
	return current + add
}

func (s *Store) indexOf(productID uint) int {
	for i, line := range s.lines {
		if line.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) notify() {
	if s.onChange != nil {
		s.onChange(s.snapshotLocked())
	}
}

func (s *Store) snapshotLocked() Snapshot {
	items := make([]SnapshotLine, 0, len(s.lines))
	for _, line := range s.lines {
		items = append(items, SnapshotLine{ProductID: line.Product.ID, Quantity: line.Quantity})
	}
	return Snapshot{Lines: items}
}
