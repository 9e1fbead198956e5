package textarea

import "sync/atomic"

// RenderMetrics holds lightweight counters for widget activity. All widget
// copies sharing a viewport share these counters; reads are safe from any
// goroutine.
type RenderMetrics struct {
	// Renders counts completed render passes.
	Renders atomic.Int64
	// CursorFollows counts renders that had to move the viewport to keep
	// the cursor visible.
	CursorFollows atomic.Int64
	// ManualScrolls counts host-driven ScrollBy calls.
	ManualScrolls atomic.Int64
}

// RenderMetricsSnapshot is a read-only copy of the counters.
type RenderMetricsSnapshot struct {
	Renders       int64
	CursorFollows int64
	ManualScrolls int64
}

// Snapshot returns a copy of the current counter values.
func (r *RenderMetrics) Snapshot() RenderMetricsSnapshot {
	return RenderMetricsSnapshot{
		Renders:       r.Renders.Load(),
		CursorFollows: r.CursorFollows.Load(),
		ManualScrolls: r.ManualScrolls.Load(),
	}
}
