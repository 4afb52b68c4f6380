// Package config defines the settings that can be supplied from a settings
// file, along with the Loader interface used to read them. Settings are
// layered: built-in defaults, then the settings file, then explicit flags.
//
// The HCL implementation lives in hcl.go; a settings file looks like:
//
//	recording_path = "captures/sequence.bin"
//	convert_escape = true
//	split_commands = true
//	highlight      = "never"
package config
