// Package scene defines the Scene interface for game screens.
//
// The playing scene is the only screen today; pause and map transfer are
// session states inside it rather than separate scenes.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen.
//
// The game loop delegates Update and Draw calls to the current scene.
// Transitions happen by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one tick.
	// Returns the next scene on a transition, nil to stay.
	// A non-nil error terminates the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when the scene becomes current.
	OnEnter()

	// OnExit is called when leaving the scene; the playing scene flushes
	// its input recording here.
	OnExit()
}
