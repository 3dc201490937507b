package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"salesboard/internal/amqp"
	"salesboard/internal/core"
	"salesboard/internal/dataset"
)

// SnapshotStore persists one acquisition result.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, res dataset.Result) (int64, error)
}

// SnapshotPublisher announces a persisted snapshot.
type SnapshotPublisher interface {
	PublishSnapshot(ctx context.Context, msg *amqp.SnapshotMessage) error
}

// SnapshotWorker periodically runs the acquisition pipeline, persists what
// it got, and announces the snapshot. Publishing is best-effort; storage is
// the source of truth.
type SnapshotWorker struct {
	loader    *dataset.Loader
	store     SnapshotStore
	publisher SnapshotPublisher // nil disables events
}

func NewSnapshotWorker(loader *dataset.Loader, store SnapshotStore, publisher SnapshotPublisher) *SnapshotWorker {
	return &SnapshotWorker{
		loader:    loader,
		store:     store,
		publisher: publisher,
	}
}

// RunOnce performs a single acquire-persist-announce cycle.
func (w *SnapshotWorker) RunOnce(ctx context.Context) error {
	res := w.loader.Load(ctx)

	id, err := w.store.SaveSnapshot(ctx, res)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	if w.publisher == nil {
		slog.DebugContext(ctx, "No publisher configured, skipping snapshot event", "snapshot_id", id)
		return nil
	}

	summary := core.Summarize(res.Dataset)
	msg := amqp.NewSnapshotMessage(id, string(res.Source), res.FallbackReason,
		res.Dataset.Len(), summary.TotalSales, res.LoadedAt)
	if err := w.publisher.PublishSnapshot(ctx, msg); err != nil {
		// Snapshot is already stored; a lost event is not worth failing the cycle.
		slog.WarnContext(ctx, "Failed to publish snapshot event",
			"snapshot_id", id, "error", err)
	}

	return nil
}

// Run executes RunOnce on the given interval until the context is done.
// The first cycle runs immediately.
func (w *SnapshotWorker) Run(ctx context.Context, interval time.Duration) error {
	if err := w.RunOnce(ctx); err != nil {
		slog.ErrorContext(ctx, "Snapshot cycle failed", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.RunOnce(ctx); err != nil {
				slog.ErrorContext(ctx, "Snapshot cycle failed", "error", err)
			}
		}
	}
}
