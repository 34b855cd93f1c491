package system

import "github.com/younwookim/rangeprompt/internal/domain/entity"

// Interactions is the map-level interaction runner the arbiter defers to
type Interactions interface {
	// IsRunning reports whether an interaction is already in progress
	IsRunning() bool
	// Start begins ev's interaction; false means it was rejected
	Start(ev *entity.Event, actor *entity.Actor) bool
}

// DispatchStats counts what a scan looked at
type DispatchStats struct {
	Checked int // events with a descriptor that were examined
	InRange int // of those, events whose window contained the actor
}

// Arbiter starts at most one interaction per tick.
// Events are scanned in index order and the first qualifying event wins,
// regardless of distance.
type Arbiter struct {
	interactions      Interactions
	originBias        float64
	touchHonorsFacing bool
}

// NewArbiter creates an arbiter. touchHonorsFacing applies the facing
// filter to touch triggers as well as the action button.
func NewArbiter(interactions Interactions, originBias float64, touchHonorsFacing bool) *Arbiter {
	return &Arbiter{
		interactions:      interactions,
		originBias:        originBias,
		touchHonorsFacing: touchHonorsFacing,
	}
}

// Dispatch scans events once and starts the first one that qualifies for
// a requested trigger kind. It returns the started event, or nil.
// A rejected start ends the scan; the next tick re-evaluates from scratch.
func (a *Arbiter) Dispatch(actor *entity.Actor, events []*entity.Event, kinds entity.TriggerSet) (*entity.Event, DispatchStats) {
	var stats DispatchStats
	if actor == nil || kinds.Empty() || a.interactions.IsRunning() {
		return nil, stats
	}

	for _, ev := range events {
		desc, ok := ev.Descriptor()
		if !ok || ev.Starting() || ev.Busy() {
			continue
		}
		stats.Checked++

		if !kinds.Has(desc.Trigger) {
			continue
		}
		if !InRange(actor.X, actor.Y, ev.X, ev.Y, desc.Window, a.originBias) {
			continue
		}
		stats.InRange++

		if a.checksFacing(desc.Trigger) && !FacingAllows(actor.Facing, desc.Facing) {
			continue
		}

		if !a.interactions.Start(ev, actor) {
			return nil, stats
		}
		ev.SetStarting(true)
		return ev, stats
	}

	return nil, stats
}

// checksFacing reports whether the facing filter applies to a trigger kind.
// Touch triggers skip it unless configured otherwise.
func (a *Arbiter) checksFacing(kind entity.TriggerKind) bool {
	return kind == entity.TriggerActionButton || a.touchHonorsFacing
}
