package system

import "github.com/younwookim/rangeprompt/internal/domain/entity"

// PromptScanner computes the actor's hasPrompt signal: whether any event
// without a suppressed icon is in range and faced, for any trigger kind.
// It always applies the facing filter, unlike touch dispatch.
type PromptScanner struct {
	originBias float64
}

// NewPromptScanner creates a scanner using the configured origin bias
func NewPromptScanner(originBias float64) *PromptScanner {
	return &PromptScanner{originBias: originBias}
}

// HasPrompt scans events and stops at the first eligible one
func (s *PromptScanner) HasPrompt(actor *entity.Actor, events []*entity.Event) bool {
	if actor == nil {
		return false
	}
	for _, ev := range events {
		desc, ok := ev.Descriptor()
		if !ok || desc.SuppressIcon {
			continue
		}
		if InRange(actor.X, actor.Y, ev.X, ev.Y, desc.Window, s.originBias) &&
			FacingAllows(actor.Facing, desc.Facing) {
			return true
		}
	}
	return false
}
