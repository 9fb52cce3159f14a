// Package profile stores RenderDoc capture settings as YAML.
//
// A profile names any subset of the capture options, plus an optional
// capture path template and capture title:
//
//	name: validation
//	capture_path: /tmp/captures/frame
//	options:
//	  api_validation: true
//	  debug_output_mute: false
//	  delay_for_debugger: 5s
//	  soft_memory_limit_mb: 512
//
// Load or Parse a profile, then Apply it to an open *renderdoc.RenderDoc.
// Snapshot goes the other way, reading every option from a live session.
package profile
