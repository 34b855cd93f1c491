package system

import (
	"go.uber.org/zap"

	"github.com/younwookim/rangeprompt/internal/domain/entity"
)

// InteractionResult is the outcome of one tick's evaluation
type InteractionResult struct {
	Triggered *entity.Event
	HasPrompt bool
	Prompt    entity.PromptVisual
	Stats     DispatchStats
}

// InteractionSystem runs the per-tick range pipeline for the controlled
// actor: dispatch, prompt scan and prompt animation.
type InteractionSystem struct {
	arbiter *Arbiter
	scanner *PromptScanner
	log     *zap.Logger
	verbose bool
}

// NewInteractionSystem wires the arbiter and prompt scanner.
// verbose enables a debug trace of every evaluation.
func NewInteractionSystem(arbiter *Arbiter, scanner *PromptScanner, log *zap.Logger, verbose bool) *InteractionSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &InteractionSystem{
		arbiter: arbiter,
		scanner: scanner,
		log:     log,
		verbose: verbose,
	}
}

// Evaluate dispatches the requested trigger kinds, recomputes the actor's
// hasPrompt signal and advances its prompt animation by one frame.
// A missing actor or stage is a no-op that reports no prompt.
func (s *InteractionSystem) Evaluate(actor *entity.Actor, stage *entity.Stage, prompt *entity.Prompt, kinds entity.TriggerSet) InteractionResult {
	if actor == nil || stage == nil || prompt == nil {
		if actor != nil {
			actor.HasPrompt = false
		}
		return InteractionResult{}
	}

	triggered, stats := s.arbiter.Dispatch(actor, stage.Events, kinds)

	hasPrompt := s.scanner.HasPrompt(actor, stage.Events)
	actor.HasPrompt = hasPrompt
	visual := prompt.Update(hasPrompt)

	if s.verbose {
		s.trace(actor, stats, triggered, hasPrompt)
	}

	return InteractionResult{
		Triggered: triggered,
		HasPrompt: hasPrompt,
		Prompt:    visual,
		Stats:     stats,
	}
}

func (s *InteractionSystem) trace(actor *entity.Actor, stats DispatchStats, triggered *entity.Event, hasPrompt bool) {
	triggeredID := 0
	if triggered != nil {
		triggeredID = triggered.ID
	}
	s.log.Debug("interaction tick",
		zap.Float64("x", actor.X),
		zap.Float64("y", actor.Y),
		zap.Stringer("facing", actor.Facing),
		zap.Int("checked", stats.Checked),
		zap.Int("in_range", stats.InRange),
		zap.Int("triggered", triggeredID),
		zap.Bool("has_prompt", hasPrompt),
	)
}
