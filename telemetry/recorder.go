package telemetry

import (
	"context"
	"fmt"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/webstorage119/vigra2/constant"
	"github.com/webstorage119/vigra2/contract"
	"github.com/webstorage119/vigra2/log"
)

// Recorder emits observability signals for contract violations. A nil
// Recorder is valid and records nothing.
type Recorder struct {
	logger    log.Logger
	counter   metric.Int64Counter
	component string
}

// NewRecorder builds a Recorder on the given meter and logger. component
// labels the emitting subsystem in metrics and logs; it may be empty.
func NewRecorder(meter metric.Meter, logger log.Logger, component string) (*Recorder, error) {
	counter, err := meter.Int64Counter(
		constant.MetricViolationTotal,
		metric.WithUnit("1"),
		metric.WithDescription("Total number of raised contract violations"),
	)
	if err != nil {
		return nil, fmt.Errorf("create violation counter: %w", err)
	}

	if logger == nil {
		logger = log.NewNop()
	}

	return &Recorder{
		logger:    logger,
		counter:   counter,
		component: component,
	}, nil
}

// Record logs the violation, increments the violation counter, and attaches
// a span event to the active span, if any.
func (r *Recorder) Record(ctx context.Context, v *contract.Violation) {
	if r == nil || v == nil {
		return
	}

	if ctx == nil {
		ctx = context.Background()
	}

	r.logViolation(ctx, v)
	r.countViolation(ctx, v)
	recordToSpan(ctx, v, r.component)
}

func (r *Recorder) logViolation(ctx context.Context, v *contract.Violation) {
	fields := []log.Field{
		log.String("kind", v.Kind().String()),
		log.Err(v),
	}

	if r.component != "" {
		fields = append(fields, log.String("component", r.component))
	}

	if file, line, ok := v.Location(); ok {
		fields = append(fields, log.String("location", file+":"+strconv.Itoa(line)))
	}

	r.logger.Log(ctx, log.LevelError, "contract violation: "+v.Message(), fields...)
}

func (r *Recorder) countViolation(ctx context.Context, v *contract.Violation) {
	attrs := []attribute.KeyValue{
		attribute.String("kind", constant.SanitizeMetricLabel(v.Kind().String())),
	}

	if r.component != "" {
		attrs = append(attrs, attribute.String("component", constant.SanitizeMetricLabel(r.component)))
	}

	r.counter.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func recordToSpan(ctx context.Context, v *contract.Violation, component string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String(constant.AttrViolationKind, v.Kind().String()),
		attribute.String(constant.AttrViolationMessage, v.Message()),
	}

	if file, line, ok := v.Location(); ok {
		attrs = append(attrs, attribute.String(constant.AttrViolationLocation, file+":"+strconv.Itoa(line)))
	}

	span.AddEvent(constant.EventViolationRaised, trace.WithAttributes(attrs...))
	span.RecordError(v)
	span.SetStatus(codes.Error, statusMessage(v, component))
}

func statusMessage(v *contract.Violation, component string) string {
	if component != "" {
		return v.Kind().String() + " violated in " + component
	}

	return v.Kind().String() + " violated"
}

// RecoverAndRecord recovers a raised Violation, records it, and lets
// execution continue. Any other panic value is re-raised. It must be
// deferred:
//
//	defer telemetry.RecoverAndRecord(ctx, recorder)
func RecoverAndRecord(ctx context.Context, rec *Recorder) {
	r := recover()
	if r == nil {
		return
	}

	v, ok := contract.AsViolation(r)
	if !ok {
		panic(r)
	}

	rec.Record(ctx, v)
}

// RecoverAndCrash records a raised Violation and re-raises it. Use it around
// operations where continuing past a violation would be dangerous.
func RecoverAndCrash(ctx context.Context, rec *Recorder) {
	r := recover()
	if r == nil {
		return
	}

	if v, ok := contract.AsViolation(r); ok {
		rec.Record(ctx, v)
	}

	panic(r)
}
