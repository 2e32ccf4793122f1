//go:build !uttt_debug

package game

// debugChecks enables precondition checks in Play. Build with the
// uttt_debug tag to turn them on.
const debugChecks = false
