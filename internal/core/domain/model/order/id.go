package order

import (
	"strconv"
	"sync/atomic"
)

// ID identifies an order for the lifetime of the shop. IDs are never reused.
type ID int64

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses the decimal representation written by String.
func ParseID(raw string) (ID, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(v), nil
}

// IDGenerator hands out strictly increasing IDs and is safe for concurrent use.
type IDGenerator struct {
	last atomic.Int64
}

// NewIDGenerator returns a generator whose first ID is start.
func NewIDGenerator(start ID) *IDGenerator {
	g := &IDGenerator{}
	g.last.Store(int64(start) - 1)
	return g
}

// Next returns the next unused ID.
func (g *IDGenerator) Next() ID {
	return ID(g.last.Add(1))
}

// Observe advances the generator so that later IDs are greater than id.
// It is called for every order restored from disk.
func (g *IDGenerator) Observe(id ID) {
	for {
		current := g.last.Load()
		if int64(id) <= current {
			return
		}
		if g.last.CompareAndSwap(current, int64(id)) {
			return
		}
	}
}
