// Package scripting runs interaction scripts on an embedded Lua VM.
package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// CommandKind identifies a step recorded by an interaction script
type CommandKind int

const (
	CmdMessage CommandKind = iota
	CmdWait
	CmdSetSwitch
	CmdTransfer
)

// Command is one step an interaction script asked for
type Command struct {
	Kind   CommandKind
	Text   string // CmdMessage
	Frames int    // CmdWait
	Name   string // CmdSetSwitch: switch name; CmdTransfer: map name
	On     bool   // CmdSetSwitch
	X, Y   int    // CmdTransfer
}

// InteractionContext is passed to a script as its single table argument
type InteractionContext struct {
	EventID   int
	EventName string
	ActorX    float64
	ActorY    float64
	Facing    string
}

// SwitchReader reads the current value of a game switch
type SwitchReader func(name string) bool

// Engine wraps a single gopher-lua VM.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger

	// per-call state, valid only inside RunInteraction
	commands  []Command
	overrides map[string]bool
	switches  SwitchReader
}

// NewEngine creates a Lua engine with the interaction API registered
func NewEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}

	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	vm.SetGlobal("message", vm.NewFunction(e.luaMessage))
	vm.SetGlobal("wait", vm.NewFunction(e.luaWait))
	vm.SetGlobal("set_switch", vm.NewFunction(e.luaSetSwitch))
	vm.SetGlobal("get_switch", vm.NewFunction(e.luaGetSwitch))
	vm.SetGlobal("transfer", vm.NewFunction(e.luaTransfer))

	return e
}

// LoadSource executes a chunk of Lua source, defining its functions
func (e *Engine) LoadSource(name, source string) error {
	if err := e.vm.DoString(source); err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	e.log.Debug("loaded lua script", zap.String("file", name))
	return nil
}

// HasFunction reports whether a global Lua function with this name exists
func (e *Engine) HasFunction(name string) bool {
	return e.vm.GetGlobal(name).Type() == lua.LTFunction
}

// RunInteraction calls the named script function and returns the steps it
// recorded. Switch reads see the script's own writes first, then switches.
func (e *Engine) RunInteraction(fnName string, ctx InteractionContext, switches SwitchReader) ([]Command, error) {
	fn := e.vm.GetGlobal(fnName)
	if fn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("lua function %s not found", fnName)
	}

	e.commands = nil
	e.overrides = make(map[string]bool)
	e.switches = switches
	defer func() {
		e.overrides = nil
		e.switches = nil
	}()

	t := e.vm.NewTable()
	t.RawSetString("event_id", lua.LNumber(ctx.EventID))
	t.RawSetString("event_name", lua.LString(ctx.EventName))
	t.RawSetString("actor_x", lua.LNumber(ctx.ActorX))
	t.RawSetString("actor_y", lua.LNumber(ctx.ActorY))
	t.RawSetString("facing", lua.LString(ctx.Facing))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, t); err != nil {
		return nil, fmt.Errorf("lua %s: %w", fnName, err)
	}

	cmds := e.commands
	e.commands = nil
	return cmds, nil
}

func (e *Engine) luaMessage(L *lua.LState) int {
	e.commands = append(e.commands, Command{Kind: CmdMessage, Text: L.CheckString(1)})
	return 0
}

func (e *Engine) luaWait(L *lua.LState) int {
	frames := L.CheckInt(1)
	if frames > 0 {
		e.commands = append(e.commands, Command{Kind: CmdWait, Frames: frames})
	}
	return 0
}

func (e *Engine) luaSetSwitch(L *lua.LState) int {
	name := L.CheckString(1)
	on := true
	if L.GetTop() >= 2 {
		on = L.ToBool(2)
	}
	if e.overrides != nil {
		e.overrides[name] = on
	}
	e.commands = append(e.commands, Command{Kind: CmdSetSwitch, Name: name, On: on})
	return 0
}

func (e *Engine) luaGetSwitch(L *lua.LState) int {
	name := L.CheckString(1)
	on, ok := e.overrides[name]
	if !ok && e.switches != nil {
		on = e.switches(name)
	}
	L.Push(lua.LBool(on))
	return 1
}

func (e *Engine) luaTransfer(L *lua.LState) int {
	e.commands = append(e.commands, Command{
		Kind: CmdTransfer,
		Name: L.CheckString(1),
		X:    L.CheckInt(2),
		Y:    L.CheckInt(3),
	})
	return 0
}

// Close releases the Lua VM
func (e *Engine) Close() {
	e.vm.Close()
}
