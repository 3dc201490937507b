// Package dataset owns acquisition: try the remote spreadsheet, degrade to
// generated demo data on any failure, and memoize the outcome for the cache
// window so repeated renders don't re-fetch.
package dataset

import (
	"context"
	"log/slog"
	"time"

	"salesboard/internal/cache"
	"salesboard/internal/core"
	"salesboard/internal/source"
	"salesboard/internal/source/demo"
)

// Source identifies where a loaded dataset came from.
type Source string

const (
	SourceSheets Source = "sheets"
	SourceDemo   Source = "demo"
)

// Result is the outcome of one acquisition. Degradation to demo data is
// routine, not exceptional, so it travels as data: Source tells the caller
// what happened and FallbackReason carries the warning text for the UI.
// Load never returns an error.
type Result struct {
	Dataset        core.Dataset
	Source         Source
	FallbackReason string
	LoadedAt       time.Time
}

// FromRemote reports whether the dataset came from the real spreadsheet.
func (r Result) FromRemote() bool {
	return r.Source == SourceSheets
}

// Loader acquires the dataset and caches the Result for a TTL window.
// Callers within the window share the same immutable Result.
type Loader struct {
	remote   source.RecordSource // nil when no credentials are configured
	memo     *cache.LRUCache[Result]
	generate func() []core.Record
	now      func() time.Time
}

const memoKey = "dataset"

// NewLoader wires a loader around an optional remote source. remote may be
// nil; every Load then serves demo data.
func NewLoader(remote source.RecordSource, ttl time.Duration) *Loader {
	return &Loader{
		remote:   remote,
		memo:     cache.NewLRUCache[Result](1, ttl),
		generate: demo.Generate,
		now:      time.Now,
	}
}

// Load returns the current dataset, acquiring it only when the cached copy
// has expired. The zero-downside contract: whatever goes wrong upstream,
// the caller always gets a dataset.
func (l *Loader) Load(ctx context.Context) Result {
	if res, ok := l.memo.Get(memoKey); ok {
		slog.DebugContext(ctx, "Dataset cache hit", "source", res.Source, "rows", res.Dataset.Len())
		return res
	}

	res := l.acquire(ctx)
	l.memo.Set(memoKey, res)
	return res
}

func (l *Loader) acquire(ctx context.Context) Result {
	if l.remote != nil {
		records, err := l.remote.ReadAll(ctx)
		if err == nil {
			slog.InfoContext(ctx, "Dataset loaded from Google Sheets", "rows", len(records))
			return Result{
				Dataset:  core.Dataset{Records: records},
				Source:   SourceSheets,
				LoadedAt: l.now(),
			}
		}
		// Single fallback path for every acquisition failure; no retry.
		slog.WarnContext(ctx, "Sheets acquisition failed, serving demo data", "error", err)
		return l.fallback(err.Error())
	}

	slog.InfoContext(ctx, "No remote source configured, serving demo data")
	return l.fallback("no spreadsheet credentials configured")
}

func (l *Loader) fallback(reason string) Result {
	records := l.generate()
	return Result{
		Dataset:        core.Dataset{Records: records},
		Source:         SourceDemo,
		FallbackReason: reason,
		LoadedAt:       l.now(),
	}
}
