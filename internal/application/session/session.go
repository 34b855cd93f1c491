// Package session runs one play session headlessly: input in, frame out.
// The ebiten scene and the replay tool both drive it.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/rangeprompt/internal/application/interpreter"
	"github.com/younwookim/rangeprompt/internal/application/state"
	"github.com/younwookim/rangeprompt/internal/application/system"
	"github.com/younwookim/rangeprompt/internal/domain/entity"
	"github.com/younwookim/rangeprompt/internal/infrastructure/config"
)

// StageSource loads map configs by name
type StageSource interface {
	LoadStage(name string) (*config.StageConfig, error)
}

// Frame is what one tick produced
type Frame struct {
	Index     int
	State     state.GameState
	MapID     string
	Triggered *entity.Event
	HasPrompt bool
	Prompt    entity.PromptVisual
	Message   string
}

// Session owns the actor, the current stage and the interaction pipeline
type Session struct {
	tunables *config.Tunables
	source   StageSource
	log      *zap.Logger

	state     state.GameState
	resumeTo  state.GameState
	stage     *entity.Stage
	actor     *entity.Actor
	prompt    *entity.Prompt
	interp    *interpreter.Interpreter
	pending   *interpreter.Transfer
	frame     int
	triggered int

	input       *system.InputSystem
	movement    *system.MovementSystem
	interaction *system.InteractionSystem
}

// New creates a session and loads startMap with the actor on its spawn tile
func New(tunables *config.Tunables, source StageSource, runner interpreter.ScriptRunner, startMap string, log *zap.Logger) (*Session, error) {
	if tunables == nil {
		tunables = config.DefaultTunables()
	}
	if log == nil {
		log = zap.NewNop()
	}

	interp := interpreter.New(runner, nil, tunables.Interpreter.MessageFrames, log.Named("interpreter"))
	bias := tunables.Prompt.OriginBias()

	s := &Session{
		tunables: tunables,
		source:   source,
		log:      log,
		state:    state.StatePlaying,
		prompt: entity.NewPromptWithConfig(entity.PromptConfig{
			AnimFrames:   tunables.Prompt.AnimFrames,
			FadeFrames:   tunables.Prompt.FadeFrames,
			BounceHeight: tunables.Prompt.BounceHeight,
			OffsetY:      tunables.Prompt.IconOffsetY,
		}),
		interp:   interp,
		input:    system.NewInputSystem(),
		movement: system.NewMovementSystem(tunables.Movement.Speed),
		interaction: system.NewInteractionSystem(
			system.NewArbiter(interp, bias, tunables.Dispatch.TouchHonorsFacing),
			system.NewPromptScanner(bias),
			log.Named("interaction"),
			tunables.Dispatch.Verbose,
		),
	}

	stage, err := s.loadStage(startMap)
	if err != nil {
		return nil, err
	}
	s.stage = stage
	s.actor = entity.NewActor(float64(stage.SpawnX), float64(stage.SpawnY))

	return s, nil
}

// Step advances the session by one tick
func (s *Session) Step(in system.InputState) (Frame, error) {
	if in.Pause {
		s.togglePause()
	}
	if s.state == state.StatePaused {
		return s.snapshot(nil, s.prompt.Visual()), nil
	}
	defer func() { s.frame++ }()

	if s.state == state.StateTransferring {
		if err := s.completeTransfer(); err != nil {
			return Frame{}, err
		}
		// nothing is loaded from the interaction pipeline's view this tick
		res := s.interaction.Evaluate(s.actor, nil, s.prompt, 0)
		return s.snapshot(nil, res.Prompt), nil
	}

	wasRunning := s.interp.IsRunning()
	if wasRunning {
		out := s.interp.Update(in.Action)
		if out.Finished {
			if out.SwitchesChanged {
				s.stage.RefreshEvents(s.interp.Switches())
			}
			if out.Transfer != nil {
				s.beginTransfer(out.Transfer)
				res := s.interaction.Evaluate(s.actor, nil, s.prompt, 0)
				return s.snapshot(nil, res.Prompt), nil
			}
		}
	}

	var kinds entity.TriggerSet
	if !s.interp.IsRunning() {
		move, action := s.input.Intents(in)
		if s.movement.Apply(s.actor, s.stage, move) {
			kinds |= entity.TouchTriggers
		}
		// the press that closed a message must not re-open the same event
		if action.Pressed && !wasRunning {
			kinds |= entity.NewTriggerSet(entity.TriggerActionButton)
		}
	}

	res := s.interaction.Evaluate(s.actor, s.stage, s.prompt, kinds)
	if res.Triggered != nil {
		s.triggered++
		s.log.Info("interaction triggered",
			zap.Int("frame", s.frame),
			zap.String("map", s.stage.ID),
			zap.Int("event", res.Triggered.ID),
			zap.String("name", res.Triggered.Name),
			zap.Stringer("trigger", res.Triggered.ActivePage().Trigger))
	}

	if s.interp.IsRunning() {
		s.state = state.StateInteracting
	} else {
		s.state = state.StatePlaying
	}

	return s.snapshot(res.Triggered, res.Prompt), nil
}

func (s *Session) togglePause() {
	switch s.state {
	case state.StatePaused:
		s.state = s.resumeTo
	case state.StateTransferring:
		// a transfer completes before the session can pause
	default:
		s.resumeTo = s.state
		s.state = state.StatePaused
	}
}

// beginTransfer unloads the current stage. The next tick loads the target.
func (s *Session) beginTransfer(t *interpreter.Transfer) {
	s.log.Info("map transfer",
		zap.String("from", s.stage.ID),
		zap.String("to", t.Map),
		zap.Int("x", t.X),
		zap.Int("y", t.Y))

	s.stage.ClearEventRuntime()
	s.interp.Reset()
	s.prompt.Reset()
	s.actor.HasPrompt = false
	s.pending = t
	s.state = state.StateTransferring
}

func (s *Session) completeTransfer() error {
	t := s.pending
	s.pending = nil

	stage, err := s.loadStage(t.Map)
	if err != nil {
		return fmt.Errorf("transfer to %s: %w", t.Map, err)
	}
	s.stage = stage
	s.actor.SetTilePos(t.X, t.Y)
	s.state = state.StatePlaying
	return nil
}

func (s *Session) loadStage(name string) (*entity.Stage, error) {
	cfg, err := s.source.LoadStage(name)
	if err != nil {
		return nil, err
	}
	stage, err := system.LoadStage(cfg)
	if err != nil {
		return nil, err
	}
	stage.RefreshEvents(s.interp.Switches())
	return stage, nil
}

func (s *Session) snapshot(triggered *entity.Event, visual entity.PromptVisual) Frame {
	f := Frame{
		Index:     s.frame,
		State:     s.state,
		Triggered: triggered,
		HasPrompt: s.actor.HasPrompt,
		Prompt:    visual,
		Message:   s.interp.Message(),
	}
	if s.stage != nil {
		f.MapID = s.stage.ID
	}
	return f
}

// Stage returns the current stage
func (s *Session) Stage() *entity.Stage { return s.stage }

// Actor returns the controlled actor
func (s *Session) Actor() *entity.Actor { return s.actor }

// Prompt returns the actor's prompt indicator state
func (s *Session) Prompt() *entity.Prompt { return s.prompt }

// State returns the session state
func (s *Session) State() state.GameState { return s.state }

// Switches returns the game-wide switch store
func (s *Session) Switches() entity.Switches { return s.interp.Switches() }

// Message returns the message on screen, if any
func (s *Session) Message() string { return s.interp.Message() }

// Tunables returns the tunables the session was built with
func (s *Session) Tunables() *config.Tunables { return s.tunables }

// FrameCount returns the number of ticks simulated
func (s *Session) FrameCount() int { return s.frame }

// TriggeredCount returns the number of interactions started so far
func (s *Session) TriggeredCount() int { return s.triggered }
