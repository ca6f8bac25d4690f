// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle: loading
// floors, running the forklift engine on each of them and writing the
// report. It is decoupled from any specific entrypoint like a CLI.
package app
