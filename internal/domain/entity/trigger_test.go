package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTriggerKind(t *testing.T) {
	tests := []struct {
		name string
		want TriggerKind
	}{
		{"", TriggerActionButton},
		{"action", TriggerActionButton},
		{"player_touch", TriggerPlayerTouch},
		{"event_touch", TriggerEventTouch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTriggerKind(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseTriggerKind("parallel")
	assert.Error(t, err)
}

func TestTriggerKind_String(t *testing.T) {
	for _, k := range []TriggerKind{TriggerActionButton, TriggerPlayerTouch, TriggerEventTouch} {
		parsed, err := ParseTriggerKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	assert.Equal(t, "unknown", TriggerKind(7).String())
}

func TestTriggerSet(t *testing.T) {
	action := NewTriggerSet(TriggerActionButton)

	assert.True(t, action.Has(TriggerActionButton))
	assert.False(t, action.Has(TriggerPlayerTouch))
	assert.False(t, action.OnlyTouch())

	assert.True(t, TouchTriggers.Has(TriggerPlayerTouch))
	assert.True(t, TouchTriggers.Has(TriggerEventTouch))
	assert.False(t, TouchTriggers.Has(TriggerActionButton))
	assert.True(t, TouchTriggers.OnlyTouch())

	var none TriggerSet
	assert.True(t, none.Empty())
	assert.False(t, none.OnlyTouch())
}
