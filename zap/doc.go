// Package zap adapts go.uber.org/zap to the log.Logger interface.
//
// Log entries emitted while an OpenTelemetry span is active carry trace_id
// and span_id fields so violation reports correlate with traces.
package zap
