package hook

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// hookFunction is the global a script must define to observe
// gestures.
const hookFunction = "on_gesture"

// LuaHost runs user scripts that observe classified gestures. A
// script defines a global on_gesture(ev) function; ev is a table with
// gesture, trigger, x, y, mapX, mapY, targetKind, and targetId
// fields.
//
// gopher-lua's LState is not goroutine-safe; the host serializes all
// calls with its own lock.
type LuaHost struct {
	mu      sync.Mutex
	state   *lua.LState
	loaded  bool
	lastErr error
}

// NewLuaHost creates a host with a fresh Lua state.
func NewLuaHost() *LuaHost {
	return &LuaHost{state: lua.NewState()}
}

// Close releases the Lua state.
func (h *LuaHost) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state != nil {
		h.state.Close()
		h.state = nil
		h.loaded = false
	}
}

// LoadScript compiles and runs a script, which must define the
// on_gesture global.
func (h *LuaHost) LoadScript(src string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == nil {
		return fmt.Errorf("hook: lua host is closed")
	}
	if err := h.state.DoString(src); err != nil {
		return fmt.Errorf("hook: load script: %w", err)
	}
	if _, ok := h.state.GetGlobal(hookFunction).(*lua.LFunction); !ok {
		return fmt.Errorf("hook: script defines no %s function", hookFunction)
	}
	h.loaded = true
	return nil
}

// Hook returns an observer that forwards gestures to the script.
// Script errors are recorded, not raised; a failing observer must not
// disturb gesture delivery.
func (h *LuaHost) Hook() Func {
	return func(ev Event) {
		h.mu.Lock()
		defer h.mu.Unlock()

		if h.state == nil || !h.loaded {
			return
		}

		tbl := h.state.NewTable()
		h.state.SetField(tbl, "gesture", lua.LString(ev.Gesture))
		h.state.SetField(tbl, "trigger", lua.LString(ev.Trigger))
		h.state.SetField(tbl, "x", lua.LNumber(ev.Screen.X))
		h.state.SetField(tbl, "y", lua.LNumber(ev.Screen.Y))
		h.state.SetField(tbl, "mapX", lua.LNumber(ev.Map.X))
		h.state.SetField(tbl, "mapY", lua.LNumber(ev.Map.Y))
		h.state.SetField(tbl, "targetKind", lua.LString(ev.TargetKind))
		h.state.SetField(tbl, "targetId", lua.LString(ev.TargetID))

		err := h.state.CallByParam(lua.P{
			Fn:      h.state.GetGlobal(hookFunction),
			NRet:    0,
			Protect: true,
		}, tbl)
		if err != nil {
			h.lastErr = err
		}
	}
}

// LastError returns the most recent script error, if any.
func (h *LuaHost) LastError() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastErr
}
