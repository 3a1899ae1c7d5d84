// Package server runs the Summarium HTTP API.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown that lets in-flight streams finish within a grace period.
package server
