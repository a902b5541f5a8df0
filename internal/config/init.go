package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// InitEnvVar names the environment override for the init script path.
const InitEnvVar = "INKWELL_INIT"

// initBudget bounds a runaway init script.
const initBudget = 2 * time.Second

// InitHooks are the editor operations an init script may call.
type InitHooks struct {
	// Bind attaches an action to a key sequence ("C-x C-r" form).
	Bind func(keys, action string) error
	// Unbind removes a binding.
	Unbind func(keys string) error
	// Set assigns a configuration option.
	Set func(option string, value any) error
}

// FindInitScript locates the init script by the fixed search order:
// $INKWELL_INIT, ./.inkwell.lua, then the user configuration
// directory. Empty when none exists.
func FindInitScript() string {
	if p := os.Getenv(InitEnvVar); p != "" {
		return p
	}
	if _, err := os.Stat(".inkwell.lua"); err == nil {
		return ".inkwell.lua"
	}
	if dir := configDir(); dir != "" {
		p := filepath.Join(dir, "init.lua")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// RunInitScript executes a Lua init script in a sandboxed state
// exposing bind, unbind, and set. A script error aborts startup; the
// editor must not come up half-configured.
func RunInitScript(path string, hooks InitHooks) error {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	if err := openSafeLibs(L); err != nil {
		return fmt.Errorf("init script %s: %w", path, err)
	}
	sandbox(L)

	ctx, cancel := context.WithTimeout(context.Background(), initBudget)
	defer cancel()
	L.SetContext(ctx)

	registerHooks(L, hooks)

	if err := L.DoFile(path); err != nil {
		return fmt.Errorf("init script %s: %w", path, err)
	}
	return nil
}

// openSafeLibs loads only the base, table, and string libraries.
func openSafeLibs(L *lua.LState) error {
	libs := []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
	}
	for _, lib := range libs {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			return err
		}
	}
	return nil
}

// sandbox removes the base-library escape hatches.
func sandbox(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// registerHooks exposes the editor API as Lua globals.
func registerHooks(L *lua.LState, hooks InitHooks) {
	L.SetGlobal("bind", L.NewFunction(func(L *lua.LState) int {
		keys := L.CheckString(1)
		action := L.CheckString(2)
		if err := hooks.Bind(keys, action); err != nil {
			L.RaiseError("bind(%q, %q): %s", keys, action, err.Error())
		}
		return 0
	}))

	L.SetGlobal("unbind", L.NewFunction(func(L *lua.LState) int {
		keys := L.CheckString(1)
		if err := hooks.Unbind(keys); err != nil {
			L.RaiseError("unbind(%q): %s", keys, err.Error())
		}
		return 0
	}))

	L.SetGlobal("set", L.NewFunction(func(L *lua.LState) int {
		option := L.CheckString(1)
		value := luaToGo(L.CheckAny(2))
		if err := hooks.Set(option, value); err != nil {
			L.RaiseError("set(%q): %s", option, err.Error())
		}
		return 0
	}))
}

// luaToGo narrows a Lua value to the types Config.Set accepts.
func luaToGo(v lua.LValue) any {
	switch lv := v.(type) {
	case lua.LNumber:
		return float64(lv)
	case lua.LString:
		return string(lv)
	case lua.LBool:
		return bool(lv)
	default:
		return v.String()
	}
}
