package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"

	"github.com/google/uuid"
)

const (
	OrdersFileName = "orders.txt"
	QueueFileName  = "order_queue.txt"
)

// Store saves and loads registry snapshots in a data directory.
type Store struct {
	dir    string
	codec  Codec
	logger *slog.Logger
	now    func() time.Time
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the time written into file headers.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(dir string, codec Codec, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		dir:    dir,
		codec:  codec,
		logger: logger.With("component", "filestore"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OrdersPath returns the location of orders.txt.
func (s *Store) OrdersPath() string { return filepath.Join(s.dir, OrdersFileName) }

// QueuePath returns the location of order_queue.txt.
func (s *Store) QueuePath() string { return filepath.Join(s.dir, QueueFileName) }

var _ ports.StateRepository = (*Store)(nil)

// Save writes both files. Each file is replaced atomically; both carry the
// same snapshot id so a later load can detect files from different saves.
func (s *Store) Save(ctx context.Context, snapshot ports.StateSnapshot) (ports.SaveSummary, error) {
	if err := ctx.Err(); err != nil {
		return ports.SaveSummary{}, err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return ports.SaveSummary{}, fmt.Errorf("create data directory: %w", err)
	}

	h := Header{
		Version:     s.codec.Version(),
		GeneratedAt: s.now(),
		SnapshotID:  uuid.New(),
	}

	if err := writeAtomic(s.OrdersPath(), func(w io.Writer) error {
		return s.codec.WriteOrders(w, snapshot.Orders, h)
	}); err != nil {
		return ports.SaveSummary{}, fmt.Errorf("write %s: %w", OrdersFileName, err)
	}

	if err := writeAtomic(s.QueuePath(), func(w io.Writer) error {
		return WriteQueue(w, snapshot.Queue, h)
	}); err != nil {
		return ports.SaveSummary{}, fmt.Errorf("write %s: %w", QueueFileName, err)
	}

	summary := ports.SaveSummary{
		SnapshotID: h.SnapshotID,
		Orders:     len(snapshot.Orders),
		Queued:     len(snapshot.Queue),
	}
	s.logger.InfoContext(ctx, "State saved",
		"snapshot_id", summary.SnapshotID, "orders", summary.Orders, "queued", summary.Queued)
	return summary, nil
}

// Load reads both files. A missing orders file yields an empty snapshot. A
// missing queue file falls back to the legacy rule: pending and processing
// orders, by ascending ID.
func (s *Store) Load(ctx context.Context) (ports.StateSnapshot, ports.LoadSummary, error) {
	var summary ports.LoadSummary
	if err := ctx.Err(); err != nil {
		return ports.StateSnapshot{}, summary, err
	}

	ordersResult, err := readFile(s.OrdersPath(), s.codec.ReadOrders)
	if errors.Is(err, fs.ErrNotExist) {
		summary.NoSavedState = true
		s.logger.InfoContext(ctx, "No saved orders found", "path", s.OrdersPath())
		return ports.StateSnapshot{}, summary, nil
	}
	if err != nil {
		return ports.StateSnapshot{}, summary, fmt.Errorf("read %s: %w", OrdersFileName, err)
	}

	summary.SnapshotID = ordersResult.Header.SnapshotID
	summary.Format = ordersResult.Header.Version.String()
	summary.Loaded = len(ordersResult.Orders)
	for _, skipped := range ordersResult.Skipped {
		summary.Skipped = append(summary.Skipped, skippedRecord(OrdersFileName, skipped))
		s.logger.WarnContext(ctx, "Skipped order record", "file", OrdersFileName, "line", skipped.Line, "error", skipped.Err)
	}

	known := make(map[order.ID]struct{}, len(ordersResult.Orders))
	for _, o := range ordersResult.Orders {
		known[o.ID()] = struct{}{}
	}

	queueResult, err := readFile(s.QueuePath(), ReadQueue)
	var queue []order.ID
	switch {
	case errors.Is(err, fs.ErrNotExist):
		summary.QueueDerived = true
		queue = deriveQueue(ordersResult.Orders)
		s.logger.WarnContext(ctx, "Queue file missing, rebuilding queue from order statuses", "queued", len(queue))
	case err != nil:
		return ports.StateSnapshot{}, summary, fmt.Errorf("read %s: %w", QueueFileName, err)
	default:
		for _, skipped := range queueResult.Skipped {
			summary.Skipped = append(summary.Skipped, skippedRecord(QueueFileName, skipped))
			s.logger.WarnContext(ctx, "Skipped queue entry", "file", QueueFileName, "line", skipped.Line, "error", skipped.Err)
		}

		if queueResult.Header.SnapshotID != ordersResult.Header.SnapshotID {
			summary.SnapshotMismatch = true
			s.logger.WarnContext(ctx, "Orders and queue files come from different saves",
				"orders_snapshot", ordersResult.Header.SnapshotID, "queue_snapshot", queueResult.Header.SnapshotID)
		}

		for _, id := range queueResult.IDs {
			if _, ok := known[id]; !ok {
				summary.QueueDropped++
				s.logger.WarnContext(ctx, "Queued order is not in the registry", "order_id", id)
				continue
			}
			queue = append(queue, id)
		}
	}
	summary.Queued = len(queue)

	s.logger.InfoContext(ctx, "State loaded",
		"snapshot_id", summary.SnapshotID, "orders", summary.Loaded, "queued", summary.Queued, "skipped", summary.SkippedCount())

	return ports.StateSnapshot{Orders: ordersResult.Orders, Queue: queue}, summary, nil
}

func skippedRecord(source string, e LineError) ports.SkippedRecord {
	return ports.SkippedRecord{Source: source, Line: e.Line, Err: e.Err}
}

func deriveQueue(orders []*order.Order) []order.ID {
	var ids []order.ID
	for _, o := range orders {
		if o.Status().IsAwaitingFulfillment() {
			ids = append(ids, o.ID())
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

func readFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()
	return read(f)
}

// writeAtomic writes to a temporary file in the same directory and renames it
// over path, so readers never observe a half-written file.
func writeAtomic(path string, write func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
