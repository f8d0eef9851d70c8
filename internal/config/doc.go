// Package config loads gridedit settings.
//
// Settings are resolved in layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← GRIDEDIT_*
//	├─────────────────────────────┤
//	│  2. Config File             │  ← ~/.config/gridedit/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Layers 1 to 3 are handled here; flags are applied by the command.
//
// # Config File
//
// The file is TOML and every key is optional:
//
//	log_level = "info"
//
//	[history]
//	max_entries = 1000
//
//	[view]
//	cell_width = 3
//	panel_width = 32
//
//	[caret]
//	blink_ms = 500
//
//	[layout]
//	path = "hall.yaml"
//	watch = true
//
// Unknown keys are rejected so that typos do not pass silently.
package config
