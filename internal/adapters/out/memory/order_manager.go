// Package memory provides in-process adapters: the order registry with its
// print queue, and a seedable catalog used when no database is configured.
package memory

import (
	"cmp"
	"slices"
	"sync"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"
)

var _ ports.OrderStore = (*OrderManager)(nil)

// OrderManager owns the order registry and the print queue. A single mutex
// guards both so that a snapshot of one is always consistent with the other.
//
// Registry and queue share order instances: Update mutates the instance seen
// by both, while Register with an existing ID replaces only the registry entry.
type OrderManager struct {
	mu       sync.Mutex
	registry map[order.ID]*order.Order
	queue    []*order.Order
}

func NewOrderManager() *OrderManager {
	return &OrderManager{
		registry: make(map[order.ID]*order.Order),
	}
}

func (m *OrderManager) Register(o *order.Order) {
	if o == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.registry[o.ID()] = o
}

func (m *OrderManager) GetByID(id order.ID) (*order.Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.registry[id]
	if !ok {
		return nil, false
	}
	return o.Clone(), true
}

func (m *OrderManager) GetAll() []*order.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sortedClonesLocked()
}

func (m *OrderManager) Update(id order.ID, mutate func(o *order.Order) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.registry[id]
	if !ok {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	// Mutations run on a copy first so a failing callback leaves no partial change.
	candidate := o.Clone()
	if err := mutate(candidate); err != nil {
		return err
	}
	*o = *candidate
	return nil
}

func (m *OrderManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.registry)
}

func (m *OrderManager) Enqueue(o *order.Order) {
	if o == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, o)
}

func (m *OrderManager) DequeueNext() (*order.Order, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.queue) == 0 {
		return nil, false
	}

	head := m.queue[0]
	m.queue[0] = nil
	m.queue = m.queue[1:]
	return head.Clone(), true
}

func (m *OrderManager) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}

func (m *OrderManager) Queued() []*order.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*order.Order, 0, len(m.queue))
	for _, o := range m.queue {
		out = append(out, o.Clone())
	}
	return out
}

func (m *OrderManager) Admit(o *order.Order) {
	if o == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.registry[o.ID()] = o
	m.queue = append(m.queue, o)
}

func (m *OrderManager) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.registry = make(map[order.ID]*order.Order)
	m.queue = nil
}

func (m *OrderManager) Snapshot() ports.StateSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	queue := make([]order.ID, 0, len(m.queue))
	for _, o := range m.queue {
		queue = append(queue, o.ID())
	}

	return ports.StateSnapshot{
		Orders: m.sortedClonesLocked(),
		Queue:  queue,
	}
}

func (m *OrderManager) Restore(snapshot ports.StateSnapshot) int {
	registry := make(map[order.ID]*order.Order, len(snapshot.Orders))
	for _, o := range snapshot.Orders {
		if o == nil {
			continue
		}
		registry[o.ID()] = o.Clone()
	}

	queue := make([]*order.Order, 0, len(snapshot.Queue))
	dropped := 0
	for _, id := range snapshot.Queue {
		o, ok := registry[id]
		if !ok {
			dropped++
			continue
		}
		queue = append(queue, o)
	}

	m.mu.Lock()
	m.registry = registry
	m.queue = queue
	m.mu.Unlock()

	return dropped
}

func (m *OrderManager) sortedClonesLocked() []*order.Order {
	out := make([]*order.Order, 0, len(m.registry))
	for _, o := range m.registry {
		out = append(out, o.Clone())
	}
	slices.SortFunc(out, func(a, b *order.Order) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return out
}
