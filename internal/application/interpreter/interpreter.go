// Package interpreter runs one map-level interaction at a time.
//
// While an interaction runs, no other may start: IsRunning is the
// world-wide mutex the dispatch arbiter checks before every scan.
package interpreter

import (
	"go.uber.org/zap"

	"github.com/younwookim/rangeprompt/internal/domain/entity"
	"github.com/younwookim/rangeprompt/internal/scripting"
)

// ScriptRunner executes a page's script and returns its recorded steps
type ScriptRunner interface {
	RunInteraction(fn string, ctx scripting.InteractionContext, switches scripting.SwitchReader) ([]scripting.Command, error)
}

// Transfer is a pending map change requested by a script
type Transfer struct {
	Map  string
	X, Y int
}

// Outcome reports what happened on an Update
type Outcome struct {
	Finished        bool
	Event           *entity.Event // set when Finished
	SwitchesChanged bool
	Transfer        *Transfer
}

// Interpreter plays back interaction steps frame by frame
type Interpreter struct {
	runner        ScriptRunner
	log           *zap.Logger
	messageFrames int
	switches      entity.Switches

	running    bool
	event      *entity.Event
	steps      []scripting.Command
	waitFrames int
	message    string

	switchesChanged bool
	transfer        *Transfer
}

// New creates an interpreter. messageFrames is how long a message stays
// up without the action key; switches is the game-wide switch store.
func New(runner ScriptRunner, switches entity.Switches, messageFrames int, log *zap.Logger) *Interpreter {
	if log == nil {
		log = zap.NewNop()
	}
	if switches == nil {
		switches = make(entity.Switches)
	}
	if messageFrames <= 0 {
		messageFrames = 120
	}
	return &Interpreter{
		runner:        runner,
		log:           log,
		messageFrames: messageFrames,
		switches:      switches,
	}
}

// IsRunning reports whether a map-level interaction is in progress
func (in *Interpreter) IsRunning() bool {
	return in.running
}

// Message returns the message currently on screen ("" if none)
func (in *Interpreter) Message() string {
	return in.message
}

// Switches returns the game-wide switch store
func (in *Interpreter) Switches() entity.Switches {
	return in.switches
}

// Start begins ev's interaction. It is rejected when another interaction
// is running, ev is busy, or ev has no active page.
func (in *Interpreter) Start(ev *entity.Event, actor *entity.Actor) bool {
	if in.running || ev == nil || ev.Busy() {
		return false
	}
	page := ev.ActivePage()
	if page == nil {
		return false
	}

	in.running = true
	in.event = ev
	in.steps = nil
	in.waitFrames = 0
	in.message = ""
	in.switchesChanged = false
	in.transfer = nil
	ev.SetBusy(true)

	if page.Script != "" && in.runner != nil {
		ctx := scripting.InteractionContext{
			EventID:   ev.ID,
			EventName: ev.Name,
		}
		if actor != nil {
			ctx.ActorX = actor.X
			ctx.ActorY = actor.Y
			ctx.Facing = actor.Facing.String()
		}
		steps, err := in.runner.RunInteraction(page.Script, ctx, in.switches.On)
		if err != nil {
			// the interaction still runs to completion with no steps
			in.log.Error("interaction script failed",
				zap.Int("event", ev.ID),
				zap.String("script", page.Script),
				zap.Error(err))
		}
		in.steps = steps
	}

	in.log.Debug("interaction started",
		zap.Int("event", ev.ID),
		zap.String("name", ev.Name),
		zap.Int("steps", len(in.steps)))
	return true
}

// Update advances the running interaction by one frame. advance skips the
// current message (action key).
func (in *Interpreter) Update(advance bool) Outcome {
	if !in.running {
		return Outcome{}
	}
	in.event.SetStarting(false)

	if in.waitFrames > 0 {
		if advance && in.message != "" {
			in.waitFrames = 0
		} else {
			in.waitFrames--
		}
		if in.waitFrames > 0 {
			return Outcome{}
		}
	}
	in.message = ""

	for len(in.steps) > 0 {
		cmd := in.steps[0]
		in.steps = in.steps[1:]

		switch cmd.Kind {
		case scripting.CmdMessage:
			in.message = cmd.Text
			in.waitFrames = in.messageFrames
			return Outcome{}
		case scripting.CmdWait:
			in.waitFrames = cmd.Frames
			return Outcome{}
		case scripting.CmdSetSwitch:
			in.switches[cmd.Name] = cmd.On
			in.switchesChanged = true
		case scripting.CmdTransfer:
			in.transfer = &Transfer{Map: cmd.Name, X: cmd.X, Y: cmd.Y}
		}
	}

	return in.finish()
}

func (in *Interpreter) finish() Outcome {
	ev := in.event
	ev.SetBusy(false)
	ev.SetStarting(false)

	out := Outcome{
		Finished:        true,
		Event:           ev,
		SwitchesChanged: in.switchesChanged,
		Transfer:        in.transfer,
	}

	in.running = false
	in.event = nil
	in.steps = nil
	in.switchesChanged = false
	in.transfer = nil

	in.log.Debug("interaction finished", zap.Int("event", ev.ID))
	return out
}

// Reset abandons any running interaction (map unload). Switches survive.
func (in *Interpreter) Reset() {
	if in.event != nil {
		in.event.ClearRuntime()
	}
	in.running = false
	in.event = nil
	in.steps = nil
	in.waitFrames = 0
	in.message = ""
	in.switchesChanged = false
	in.transfer = nil
}
