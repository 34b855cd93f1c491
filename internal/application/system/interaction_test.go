package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/younwookim/rangeprompt/internal/domain/entity"
)

func newTestStage(events ...*entity.Event) *entity.Stage {
	return &entity.Stage{ID: "test", Width: 20, Height: 20, TileSize: 16, Events: events}
}

func newTestInteractionSystem(fi *fakeInteractions, log *zap.Logger, verbose bool) *InteractionSystem {
	return NewInteractionSystem(NewArbiter(fi, 0, false), NewPromptScanner(0), log, verbose)
}

func TestInteractionSystem_Evaluate(t *testing.T) {
	t.Run("dispatches and prompts", func(t *testing.T) {
		fi := &fakeInteractions{}
		sys := newTestInteractionSystem(fi, nil, false)
		ev := newTestEvent(1, 10, 10, "<range:1111>", entity.TriggerActionButton)
		actor := entity.NewActor(10, 11)
		prompt := entity.NewPrompt()

		res := sys.Evaluate(actor, newTestStage(ev), prompt, actionOnly)

		assert.Same(t, ev, res.Triggered)
		assert.True(t, res.HasPrompt)
		assert.True(t, actor.HasPrompt)
		assert.Equal(t, entity.PromptFadingIn, prompt.Phase)
		assert.True(t, res.Prompt.Visible)
	})

	t.Run("prompt without a request", func(t *testing.T) {
		fi := &fakeInteractions{}
		sys := newTestInteractionSystem(fi, nil, false)
		ev := newTestEvent(1, 10, 10, "<range:1111>", entity.TriggerActionButton)
		actor := entity.NewActor(10, 11)

		res := sys.Evaluate(actor, newTestStage(ev), entity.NewPrompt(), 0)

		assert.Nil(t, res.Triggered)
		assert.True(t, res.HasPrompt)
		assert.Empty(t, fi.started)
	})

	t.Run("missing stage is a no-op", func(t *testing.T) {
		fi := &fakeInteractions{}
		sys := newTestInteractionSystem(fi, nil, false)
		actor := entity.NewActor(10, 11)
		actor.HasPrompt = true
		prompt := entity.NewPrompt()

		res := sys.Evaluate(actor, nil, prompt, actionOnly)

		assert.Nil(t, res.Triggered)
		assert.False(t, res.HasPrompt)
		assert.False(t, res.Prompt.Visible)
		assert.False(t, actor.HasPrompt)
		assert.Equal(t, entity.PromptHidden, prompt.Phase)
	})

	t.Run("missing actor is a no-op", func(t *testing.T) {
		fi := &fakeInteractions{}
		sys := newTestInteractionSystem(fi, nil, false)
		ev := newTestEvent(1, 10, 10, "<range:1111>", entity.TriggerActionButton)

		res := sys.Evaluate(nil, newTestStage(ev), entity.NewPrompt(), actionOnly)

		assert.Nil(t, res.Triggered)
		assert.False(t, res.HasPrompt)
		assert.Empty(t, fi.started)
	})

	t.Run("degenerate window excluded everywhere", func(t *testing.T) {
		fi := &fakeInteractions{}
		sys := newTestInteractionSystem(fi, nil, false)
		ev := newTestEvent(1, 10, 10, "<range:0000>", entity.TriggerActionButton)

		for _, pos := range [][2]float64{{10, 10}, {10, 11}, {9.5, 10.5}} {
			res := sys.Evaluate(entity.NewActor(pos[0], pos[1]), newTestStage(ev), entity.NewPrompt(), actionOnly)
			assert.Nil(t, res.Triggered)
			assert.False(t, res.HasPrompt)
		}
		assert.Empty(t, fi.started)
	})
}

func TestInteractionSystem_VerboseTrace(t *testing.T) {
	t.Run("logs counts when verbose", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		fi := &fakeInteractions{}
		sys := newTestInteractionSystem(fi, zap.New(core), true)
		stage := newTestStage(
			newTestEvent(1, 0, 0, "<range:1111>", entity.TriggerActionButton),
			newTestEvent(7, 10, 10, "<range:1111>", entity.TriggerActionButton),
		)

		sys.Evaluate(entity.NewActor(10, 11), stage, entity.NewPrompt(), actionOnly)

		entries := logs.FilterMessage("interaction tick").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, int64(2), fields["checked"])
		assert.Equal(t, int64(1), fields["in_range"])
		assert.Equal(t, int64(7), fields["triggered"])
		assert.Equal(t, true, fields["has_prompt"])
	})

	t.Run("silent otherwise", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		sys := newTestInteractionSystem(&fakeInteractions{}, zap.New(core), false)

		sys.Evaluate(entity.NewActor(10, 11), newTestStage(), entity.NewPrompt(), actionOnly)

		assert.Equal(t, 0, logs.Len())
	})
}
