package entity

import "fmt"

// TriggerKind is how an interaction is initiated
type TriggerKind int

const (
	TriggerActionButton TriggerKind = iota // actor presses the action key
	TriggerPlayerTouch                     // actor walks into the event's range
	TriggerEventTouch                      // event reaches the actor
)

// String returns the config name of the trigger kind
func (k TriggerKind) String() string {
	switch k {
	case TriggerActionButton:
		return "action"
	case TriggerPlayerTouch:
		return "player_touch"
	case TriggerEventTouch:
		return "event_touch"
	default:
		return "unknown"
	}
}

// ParseTriggerKind maps a config name to a trigger kind.
// An empty name defaults to the action button.
func ParseTriggerKind(name string) (TriggerKind, error) {
	switch name {
	case "", "action":
		return TriggerActionButton, nil
	case "player_touch":
		return TriggerPlayerTouch, nil
	case "event_touch":
		return TriggerEventTouch, nil
	}
	return 0, fmt.Errorf("unknown trigger kind %q", name)
}

// TriggerSet is a bit set of requested trigger kinds
type TriggerSet uint8

// Touch kinds requested together when the actor steps onto a new tile
const TouchTriggers = TriggerSet(1<<TriggerPlayerTouch | 1<<TriggerEventTouch)

// NewTriggerSet builds a set from the given kinds
func NewTriggerSet(kinds ...TriggerKind) TriggerSet {
	var s TriggerSet
	for _, k := range kinds {
		s |= 1 << uint(k)
	}
	return s
}

// Has reports whether k is requested
func (s TriggerSet) Has(k TriggerKind) bool {
	return s&(1<<uint(k)) != 0
}

// Empty reports whether nothing is requested
func (s TriggerSet) Empty() bool {
	return s == 0
}

// OnlyTouch reports whether the set requests touch kinds and no action button
func (s TriggerSet) OnlyTouch() bool {
	return !s.Empty() && !s.Has(TriggerActionButton)
}
