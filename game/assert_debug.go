//go:build uttt_debug

package game

const debugChecks = true
