// Package config loads the settings shared by the uievents commands.
//
// Settings come from three sources, later ones overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file, chosen by extension
//  3. UIEVENTS_* environment variables
//
// A missing file is not an error; the defaults are used. Unknown keys in a
// file are rejected so that typos do not silently fall back to defaults.
//
// Example settings file:
//
//	[pointer]
//	scale_factor = 2.0
//	collect_coalesced = true
//
//	[logging]
//	level = "debug"
//
//	[bridge]
//	addr = "127.0.0.1:8686"
//	frame_interval = "16ms"
//
// Watch reloads the file whenever it changes.
package config
