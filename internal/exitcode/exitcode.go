// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// Error indicates a runtime failure (network, file, terminal).
	Error = 1

	// Usage indicates bad arguments or configuration.
	Usage = 2
)
