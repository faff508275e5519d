// Package cli defines the Cobra command tree for the asicmf CLI. Each file
// in this package registers one top-level command (inspect, validate,
// create, sync, ...) with the root command. Commands delegate to the
// manifest, container and layout packages and only handle flag parsing,
// I/O formatting and exit status.
package cli
