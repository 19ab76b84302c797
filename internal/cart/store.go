package cart

import (
	"github.com/nikolayk812/ceramics-cart/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
	"sync"
)

// Store is an in-memory cart with change notification.
// Every mutating call notifies subscribers after the change is applied,
// whether or not anything actually changed.
type Store struct {
	mu       sync.RWMutex
	items    []domain.LineItem
	currency currency.Unit

	listeners Registry
	logger    *zap.Logger
}

type Option func(*Store)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func NewStore(cur currency.Unit, opts ...Option) *Store {
	s := &Store{
		currency: cur,
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AddItem appends item, or bumps the quantity of the item with the same ID.
// Price and customization of an existing item are left untouched.
func (s *Store) AddItem(item domain.LineItem) {
	s.mu.Lock()
	if i := s.indexOf(item.ID); i >= 0 {
		s.items[i].Quantity += item.Quantity
	} else {
		s.items = append(s.items, item)
	}
	s.mu.Unlock()

	s.logger.Debug("item added", zap.String("item_id", item.ID), zap.Int("quantity", item.Quantity))
	s.listeners.Notify()
}

func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		s.items = append(s.items[:i:i], s.items[i+1:]...)
	}
	s.mu.Unlock()

	s.logger.Debug("item removed", zap.String("item_id", id))
	s.listeners.Notify()
}

// UpdateQuantity sets the quantity of an existing item. A zero quantity is
// stored as is: callers that want the item gone call RemoveItem.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	if i := s.indexOf(id); i >= 0 {
		s.items[i].Quantity = quantity
	}
	s.mu.Unlock()

	s.logger.Debug("quantity updated", zap.String("item_id", id), zap.Int("quantity", quantity))
	s.listeners.Notify()
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	s.logger.Debug("cart cleared")
	s.listeners.Notify()
}

// Items returns the items in insertion order. The slice is a copy but
// customization maps are shared with the store.
func (s *Store) Items() []domain.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)

	return items
}

func (s *Store) Cart() domain.Cart {
	return domain.Cart{Items: s.Items()}
}

func (s *Store) Total() domain.Money {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return totalOf(s.items, s.currency)
}

// Count is the number of pieces, not of distinct items.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}

	return count
}

func (s *Store) Currency() currency.Unit {
	return s.currency
}

func (s *Store) Subscribe(listener func()) (unsubscribe func()) {
	return s.listeners.Subscribe(listener)
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}

	return -1
}
