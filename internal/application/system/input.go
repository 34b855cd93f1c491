package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem reads the keyboard
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the current input state.
// Action and Pause are edge-triggered: true only on the frame the key goes down.
type InputState struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Action bool
	Pause  bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Action: inpututil.IsKeyJustPressed(ebiten.KeyZ) ||
			inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// Intents translates an input snapshot into movement and action intents
func (s *InputSystem) Intents(input InputState) (MoveIntent, ActionIntent) {
	var move MoveIntent
	switch {
	case input.Left && !input.Right:
		move.DX = -1
	case input.Right && !input.Left:
		move.DX = 1
	}
	switch {
	case input.Up && !input.Down:
		move.DY = -1
	case input.Down && !input.Up:
		move.DY = 1
	}
	return move, ActionIntent{Pressed: input.Action}
}
