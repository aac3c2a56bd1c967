// Package constant provides shared constant values used across the library.
//
// Keep this package free of heavy runtime behavior. It is used by the
// telemetry and logging helpers to avoid duplicated literals.
package constant
