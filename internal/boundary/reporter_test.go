package boundary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func sampleFailure() (error, FailureContext) {
	return errors.New("boom"), FailureContext{
		ID:       "f-1",
		Boundary: "emergency",
		Phase:    PhaseUpdate,
		MsgType:  "tea.KeyMsg",
		Attempt:  2,
		Stack:    "goroutine 1 [running]:",
		At:       time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestLogReporter_WritesStructuredEntry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := LogReporter{Logger: zap.New(core)}

	err, fc := sampleFailure()
	r.Report(err, fc)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "uncaught error in guarded view", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "emergency", fields["boundary"])
	assert.Equal(t, "update", fields["phase"])
	assert.Equal(t, "f-1", fields["failure_id"])
	assert.Equal(t, "tea.KeyMsg", fields["msg_type"])
	assert.Equal(t, "boom", fields["error"])
	assert.Equal(t, int64(2), fields["attempt"])
	assert.Contains(t, fields, "stack")
}

func TestLogReporter_NilLoggerIsNoop(t *testing.T) {
	err, fc := sampleFailure()
	assert.NotPanics(t, func() { LogReporter{}.Report(err, fc) })
}

func TestTraceReporter_RecordsErrorSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	r := TraceReporter{Tracer: tp.Tracer("medcare/boundary")}
	err, fc := sampleFailure()
	r.Report(err, fc)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "boundary.failure", span.Name())
	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "boom", span.Status().Description)

	attrs := map[string]string{}
	for _, kv := range span.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "emergency", attrs["medcare.boundary.name"])
	assert.Equal(t, "update", attrs["medcare.boundary.phase"])
	assert.Equal(t, "f-1", attrs["medcare.failure.id"])
	assert.Equal(t, "tea.KeyMsg", attrs["medcare.msg.type"])

	require.NotEmpty(t, span.Events())
	assert.Equal(t, "exception", span.Events()[0].Name)
}

func TestMetricsReporter_CountsByBoundaryAndPhase(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewMetricsReporter(reg)
	require.NoError(t, err)

	e, fc := sampleFailure()
	r.Report(e, fc)
	r.Report(e, fc)
	fc.Phase = PhaseRender
	r.Report(e, fc)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.failures.WithLabelValues("emergency", "update")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.failures.WithLabelValues("emergency", "render")))

	_, err = NewMetricsReporter(reg)
	assert.Error(t, err, "registering twice should fail")
}

func TestMultiReporter_FansOutInOrder(t *testing.T) {
	var order []string
	m := MultiReporter{
		ReporterFunc(func(error, FailureContext) { order = append(order, "log") }),
		nil,
		ReporterFunc(func(error, FailureContext) { order = append(order, "trace") }),
	}
	err, fc := sampleFailure()
	m.Report(err, fc)
	assert.Equal(t, []string{"log", "trace"}, order)
}
