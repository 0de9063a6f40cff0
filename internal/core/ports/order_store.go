// Package ports defines the contracts between the print shop core and its adapters.
package ports

import (
	"printshop/internal/core/domain/model/order"
)

// OrderRegistry is the ID-indexed store of every known order, queued or not.
type OrderRegistry interface {
	// Register inserts the order or replaces the one with the same ID. Nil is ignored.
	Register(o *order.Order)

	// GetByID returns a copy of the registered order.
	GetByID(id order.ID) (*order.Order, bool)

	// GetAll returns copies of all registered orders sorted by ID.
	// Changing the slice or the orders does not affect the registry.
	GetAll() []*order.Order

	// Update mutates the registered order in place. The same instance is seen
	// by the print queue, so queued entries observe the change too.
	Update(id order.ID, mutate func(o *order.Order) error) error

	// Count returns the number of registered orders.
	Count() int
}

// PrintQueue is the FIFO sequence of orders awaiting fulfillment. It does not
// check registry membership and does not prevent the same order being queued twice.
type PrintQueue interface {
	// Enqueue appends the order to the tail. Nil is ignored.
	Enqueue(o *order.Order)

	// DequeueNext removes and returns a copy of the head.
	DequeueNext() (*order.Order, bool)

	// Size returns the queue length.
	Size() int

	// Queued returns copies of the queued orders, head first.
	Queued() []*order.Order
}

// StateSnapshot is a consistent copy of the registry and the queue taken under one lock.
type StateSnapshot struct {
	Orders []*order.Order
	Queue  []order.ID
}

// OrderStore combines the registry and the queue behind a single lock.
type OrderStore interface {
	OrderRegistry
	PrintQueue

	// Admit registers the order and appends it to the queue in one step, so a
	// concurrent Snapshot never sees it in only one of them. Nil is ignored.
	Admit(o *order.Order)

	// ClearAll empties both the registry and the queue.
	ClearAll()

	// Snapshot copies the current state for persistence.
	Snapshot() StateSnapshot

	// Restore replaces the current state. Queue IDs missing from the snapshot's
	// orders are dropped; the number dropped is returned.
	Restore(snapshot StateSnapshot) int
}
