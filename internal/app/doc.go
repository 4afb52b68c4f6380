// Package app contains the core application logic. It defines the App
// struct, its validated configuration, and the decode run itself, decoupled
// from any specific entrypoint like the CLI.
package app
