// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It layers
// explicit flags over the optional settings file and produces the
// application's immutable configuration.
package cli
