// Package cli defines the Cobra command tree for the uxsprint CLI. The root
// command runs the setup pipeline; the remaining files each register one
// subcommand. Commands delegate to internal packages for business logic and
// only handle flag parsing, I/O formatting, and user interaction.
package cli
