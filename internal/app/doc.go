// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the two-phase execution lifecycle (load the
// connections, then answer the requests), decoupled from any specific
// entrypoint like a CLI.
package app
