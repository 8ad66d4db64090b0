// Package config loads demo settings from YAML and provides built-in
// maze presets.
//
// A minimal config file:
//
//	maze:
//	  - "S . #"
//	  - ". . G"
//	step_delay: 0.25
//	show_search: true
//
// Start and goal default to the S and G markers when omitted.
package config
