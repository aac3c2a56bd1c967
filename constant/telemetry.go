package constant

import "strings"

// TelemetrySDKName identifies this library in OTEL telemetry resource
// attributes.
const TelemetrySDKName = "vigra2/contract"

// MaxMetricLabelLength is the maximum length for metric labels to prevent
// cardinality explosion.
const MaxMetricLabelLength = 64

// Telemetry attribute keys for violation events.
const (
	// AttrPrefixViolation is the prefix for violation event attributes.
	AttrPrefixViolation = "violation."
	// AttrViolationKind is the attribute key for the violation category.
	AttrViolationKind = AttrPrefixViolation + "kind"
	// AttrViolationMessage is the attribute key for the caller message.
	AttrViolationMessage = AttrPrefixViolation + "message"
	// AttrViolationLocation is the attribute key for the call-site file:line.
	AttrViolationLocation = AttrPrefixViolation + "location"
)

// Telemetry metric names.
const (
	// MetricViolationTotal is the counter metric for raised contract violations.
	MetricViolationTotal = "contract_violation_total"
)

// Telemetry event names.
const (
	// EventViolationRaised is the span event name for contract violations.
	EventViolationRaised = "violation.raised"
)

// SanitizeMetricLabel trims and truncates a label value to
// MaxMetricLabelLength to keep cardinality bounded in OTEL backends.
func SanitizeMetricLabel(value string) string {
	value = strings.TrimSpace(value)
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
