// Package profile provides scoped time and allocation measurement around
// the expensive phases of an encoding pipeline.
//
// A Profiler hands out Regions keyed by a phase label ("fit", "transform").
// Regions are closed with End, typically via defer so the measurement is
// recorded on every exit path, including panics and early error returns:
//
//	region := profiler.Start("fit")
//	defer region.End()
//
// Accumulated per-phase statistics are queryable with Stats after the fact.
// A Profiler is not safe for concurrent use; each pipeline owns its own.
package profile

import (
	"runtime"
	"sort"
	"time"
)

// PhaseStats accumulates measurements for one labeled phase across calls.
type PhaseStats struct {
	// Label identifies the measured phase.
	Label string
	// Calls is the number of completed regions for this phase.
	Calls int
	// TotalDuration is the wall time summed over all completed regions.
	TotalDuration time.Duration
	// LastDuration is the wall time of the most recent region.
	LastDuration time.Duration
	// TotalAllocBytes is the cumulative heap allocation attributed to this
	// phase, summed over all completed regions.
	TotalAllocBytes uint64
	// LastAllocBytes is the heap allocation of the most recent region.
	LastAllocBytes uint64
}

// Profiler records per-phase timing and allocation statistics.
type Profiler struct {
	phases map[string]*PhaseStats
}

// New creates an empty profiler.
func New() *Profiler {
	return &Profiler{
		phases: make(map[string]*PhaseStats),
	}
}

// Region is an open measurement scope returned by Start. It must be closed
// exactly once with End; closing via defer guarantees release on error paths.
type Region struct {
	profiler   *Profiler
	label      string
	start      time.Time
	startAlloc uint64
	done       bool
}

// Start opens a measurement region for the given phase label.
//
// The region captures wall time and cumulative heap allocation
// (runtime.MemStats.TotalAlloc, a monotonic counter, so the delta is valid
// even when the garbage collector runs inside the region).
func (p *Profiler) Start(label string) *Region {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return &Region{
		profiler:   p,
		label:      label,
		start:      time.Now(),
		startAlloc: ms.TotalAlloc,
	}
}

// End closes the region and records its measurements into the owning
// profiler. End is idempotent: the second and later calls are no-ops, so a
// deferred End after an explicit End is harmless.
func (r *Region) End() {
	if r.done {
		return
	}
	r.done = true

	elapsed := time.Since(r.start)

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	allocated := ms.TotalAlloc - r.startAlloc

	stats, ok := r.profiler.phases[r.label]
	if !ok {
		stats = &PhaseStats{Label: r.label}
		r.profiler.phases[r.label] = stats
	}
	stats.Calls++
	stats.TotalDuration += elapsed
	stats.LastDuration = elapsed
	stats.TotalAllocBytes += allocated
	stats.LastAllocBytes = allocated
}

// Stats returns the accumulated statistics for a phase label.
// The second return value is false if no region with that label completed.
func (p *Profiler) Stats(label string) (PhaseStats, bool) {
	stats, ok := p.phases[label]
	if !ok {
		return PhaseStats{}, false
	}

	return *stats, true
}

// Labels returns the phase labels with recorded statistics, sorted.
func (p *Profiler) Labels() []string {
	labels := make([]string, 0, len(p.phases))
	for label := range p.phases {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	return labels
}

// Reset discards all recorded statistics.
func (p *Profiler) Reset() {
	p.phases = make(map[string]*PhaseStats)
}
