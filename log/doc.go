// Package log defines the minimal structured-logging interface used by the
// vigra2 diagnostics packages.
//
// Adapters (such as the zap package) implement Logger so violation
// reporting stays backend-agnostic.
package log
