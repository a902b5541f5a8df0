// Package config loads editor settings.
//
// Settings come from three layers, each overriding the previous:
// built-in defaults, a settings file (TOML or YAML, picked by
// extension), and INKWELL_* environment variables. A Lua init script,
// run once at startup, can adjust options and key bindings on top.
package config
