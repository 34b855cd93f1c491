package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/rangeprompt/internal/domain/entity"
)

func TestPromptScanner_HasPrompt(t *testing.T) {
	tests := []struct {
		name   string
		events []*entity.Event
		actor  *entity.Actor
		want   bool
	}{
		{
			name:   "action event in range",
			events: []*entity.Event{newTestEvent(1, 10, 10, "<range:1111>", entity.TriggerActionButton)},
			actor:  entity.NewActor(10, 11),
			want:   true,
		},
		{
			name:   "touch event counts too",
			events: []*entity.Event{newTestEvent(1, 10, 10, "<range:1111>", entity.TriggerEventTouch)},
			actor:  entity.NewActor(10, 11),
			want:   true,
		},
		{
			name:   "out of range",
			events: []*entity.Event{newTestEvent(1, 10, 10, "<range:1111>", entity.TriggerActionButton)},
			actor:  entity.NewActor(10, 12),
			want:   false,
		},
		{
			name:   "facing applies to touch events",
			events: []*entity.Event{newTestEvent(1, 10, 10, "<range:1111u>", entity.TriggerPlayerTouch)},
			actor:  entity.NewActor(10, 11),
			want:   false,
		},
		{
			name:   "zero window",
			events: []*entity.Event{newTestEvent(1, 10, 10, "<range:0000>", entity.TriggerActionButton)},
			actor:  entity.NewActor(10, 10),
			want:   false,
		},
		{
			name: "noicon suppresses only that event",
			events: []*entity.Event{
				entity.NewEvent(1, "", 10, 10, "<range:1111>", []entity.Page{{Note: "<noicon>"}}),
				newTestEvent(2, 10, 10, "<range:1111>", entity.TriggerActionButton),
			},
			actor: entity.NewActor(10, 10),
			want:  true,
		},
		{
			name: "noicon alone",
			events: []*entity.Event{
				entity.NewEvent(1, "", 10, 10, "<range:1111>", []entity.Page{{Note: "<noicon>"}}),
			},
			actor: entity.NewActor(10, 10),
			want:  false,
		},
		{
			name:   "busy events still prompt",
			events: []*entity.Event{busyEvent(newTestEvent(1, 10, 10, "<range:1111>", entity.TriggerActionButton))},
			actor:  entity.NewActor(10, 10),
			want:   true,
		},
		{
			name:   "nil actor",
			events: []*entity.Event{newTestEvent(1, 10, 10, "<range:1111>", entity.TriggerActionButton)},
			actor:  nil,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewPromptScanner(0)
			assert.Equal(t, tt.want, s.HasPrompt(tt.actor, tt.events))
		})
	}
}

func TestPromptScanner_UsesOriginBias(t *testing.T) {
	events := []*entity.Event{newTestEvent(1, 10, 10, "<range:2222>", entity.TriggerActionButton)}
	actor := entity.NewActor(10, 8.2)

	assert.True(t, NewPromptScanner(0).HasPrompt(actor, events))
	assert.False(t, NewPromptScanner(-0.5).HasPrompt(actor, events))
}

func busyEvent(ev *entity.Event) *entity.Event {
	ev.SetBusy(true)
	return ev
}
