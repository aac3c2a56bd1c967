// Package telemetry emits observability signals for recovered contract
// violations: structured logs, OpenTelemetry span events, and a violation
// counter.
//
// The contract package itself stays free of dependencies; handlers that
// recover a Violation hand it to a Recorder here.
package telemetry
