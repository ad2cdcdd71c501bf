package filter

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/hookstorm/internal/event"
	"github.com/dshills/hookstorm/internal/logging"
)

// LuaFilter evaluates a Lua accept predicate against each event. A script
// error fails open: the event is kept and the error is logged, so a buggy
// filter never silences the hook.
type LuaFilter struct {
	mu     sync.Mutex
	state  *lua.LState
	accept *lua.LFunction
	log    *logging.Logger

	errCount uint64
}

// NewFromFile loads a filter script from path.
func NewFromFile(path string, log *logging.Logger) (*LuaFilter, error) {
	return load(func(L *lua.LState) error { return L.DoFile(path) }, log)
}

// NewFromString loads a filter script from source text.
func NewFromString(src string, log *logging.Logger) (*LuaFilter, error) {
	return load(func(L *lua.LState) error { return L.DoString(src) }, log)
}

func load(run func(*lua.LState) error, log *logging.Logger) (*LuaFilter, error) {
	if log == nil {
		log = logging.Nop()
	}
	L := lua.NewState()
	if err := run(L); err != nil {
		L.Close()
		return nil, fmt.Errorf("%w: %v", ErrScriptLoad, err)
	}
	fn, ok := L.GetGlobal("accept").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, ErrNoAcceptFunction
	}
	return &LuaFilter{
		state:  L,
		accept: fn,
		log:    log.WithComponent("filter"),
	}, nil
}

// Allow reports whether the event should be delivered.
func (f *LuaFilter) Allow(ev event.Event) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := f.state.CallByParam(lua.P{
		Fn:      f.accept,
		NRet:    1,
		Protect: true,
	}, f.eventTable(ev))
	if err != nil {
		f.errCount++
		f.log.Warn("accept failed, keeping event: %v", err)
		return true
	}
	ret := f.state.Get(-1)
	f.state.Pop(1)
	return lua.LVAsBool(ret)
}

// Errors returns how many accept calls have failed since the filter
// loaded.
func (f *LuaFilter) Errors() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errCount
}

// Close releases the Lua state. The filter must not be used afterwards.
func (f *LuaFilter) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Close()
}

// eventTable marshals an event into a Lua table. Only the fields valid
// for the event's type are meaningful; the rest carry their zero values.
func (f *LuaFilter) eventTable(ev event.Event) *lua.LTable {
	t := f.state.NewTable()
	t.RawSetString("type", lua.LString(ev.Type.String()))
	t.RawSetString("when", lua.LNumber(ev.When))
	t.RawSetString("mask", lua.LNumber(ev.Mask))
	t.RawSetString("rawCode", lua.LNumber(ev.RawCode))
	if ev.Type.IsKey() {
		t.RawSetString("key", lua.LString(ev.Key.String()))
		if ev.Rune != 0 {
			t.RawSetString("char", lua.LString(string(ev.Rune)))
		}
	}
	if ev.Type.IsMouse() {
		t.RawSetString("x", lua.LNumber(ev.X))
		t.RawSetString("y", lua.LNumber(ev.Y))
		t.RawSetString("clicks", lua.LNumber(ev.Clicks))
		t.RawSetString("button", lua.LNumber(ev.Button))
	}
	if ev.Type == event.MouseWheel {
		t.RawSetString("rotation", lua.LNumber(ev.Rotation))
	}
	return t
}
