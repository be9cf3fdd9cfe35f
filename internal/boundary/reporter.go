package boundary

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// FailureContext describes where a contained failure happened.
type FailureContext struct {
	ID       string    // unique per failure event
	Boundary string    // name of the boundary that contained it
	Phase    Phase     // lifecycle point of the failure
	MsgType  string    // Go type of the message being handled, update phase only
	Attempt  int       // retry attempt number, 0 before the first retry
	Stack    string    // goroutine stack captured at the panic, if any
	At       time.Time // when the boundary observed it
}

// Reporter is the observability sink for contained failures.
//
// Report is called exactly once per failure event, before the fallback is
// rendered. A Reporter must not panic: a panic from Report is not contained
// and propagates to whoever called into the boundary.
type Reporter interface {
	Report(err error, fc FailureContext)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(err error, fc FailureContext)

// Report implements Reporter.
func (f ReporterFunc) Report(err error, fc FailureContext) { f(err, fc) }

// MultiReporter fans a failure out to every reporter in order.
type MultiReporter []Reporter

// Report implements Reporter.
func (m MultiReporter) Report(err error, fc FailureContext) {
	for _, r := range m {
		if r != nil {
			r.Report(err, fc)
		}
	}
}

// LogReporter writes failures to a zap logger.
type LogReporter struct {
	Logger *zap.Logger
}

// Report implements Reporter.
func (l LogReporter) Report(err error, fc FailureContext) {
	if l.Logger == nil {
		return
	}
	fields := []zap.Field{
		zap.Error(err),
		zap.String("boundary", fc.Boundary),
		zap.String("phase", string(fc.Phase)),
		zap.String("failure_id", fc.ID),
		zap.Int("attempt", fc.Attempt),
		zap.Time("at", fc.At),
	}
	if fc.MsgType != "" {
		fields = append(fields, zap.String("msg_type", fc.MsgType))
	}
	if fc.Stack != "" {
		fields = append(fields, zap.String("stack", fc.Stack))
	}
	l.Logger.Error("uncaught error in guarded view", fields...)
}

// TraceReporter records each failure as a short error span.
type TraceReporter struct {
	Tracer oteltrace.Tracer
}

// Report implements Reporter.
func (t TraceReporter) Report(err error, fc FailureContext) {
	if t.Tracer == nil {
		return
	}
	_, span := t.Tracer.Start(context.Background(), "boundary.failure",
		oteltrace.WithTimestamp(fc.At),
		oteltrace.WithAttributes(
			attribute.String("medcare.boundary.name", fc.Boundary),
			attribute.String("medcare.boundary.phase", string(fc.Phase)),
			attribute.String("medcare.failure.id", fc.ID),
			attribute.Int("medcare.boundary.attempt", fc.Attempt),
		),
	)
	if fc.MsgType != "" {
		span.SetAttributes(attribute.String("medcare.msg.type", fc.MsgType))
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.End(oteltrace.WithTimestamp(fc.At))
}

// MetricsReporter counts failures per boundary and phase.
type MetricsReporter struct {
	failures *prometheus.CounterVec
}

// NewMetricsReporter registers the failure counter on reg.
func NewMetricsReporter(reg prometheus.Registerer) (*MetricsReporter, error) {
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medcare",
		Subsystem: "boundary",
		Name:      "failures_total",
		Help:      "Failures contained by a fault-isolation boundary.",
	}, []string{"boundary", "phase"})
	if err := reg.Register(failures); err != nil {
		return nil, fmt.Errorf("register boundary metrics: %w", err)
	}
	return &MetricsReporter{failures: failures}, nil
}

// Report implements Reporter.
func (m *MetricsReporter) Report(_ error, fc FailureContext) {
	m.failures.WithLabelValues(fc.Boundary, string(fc.Phase)).Inc()
}
