package command

import (
	"context"
	"io"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	telem "github.com/timvw/gh-ghq-cd/internal/otel"
)

// TracingRunner wraps a Runner with one span and one metric per invocation.
type TracingRunner struct {
	Runner  Runner
	Tracer  trace.Tracer
	Metrics *telem.Metrics
}

var _ Runner = (*TracingRunner)(nil)

// WithTelemetry returns r instrumented with tel, or r itself when tel is nil.
func WithTelemetry(r Runner, tel *telem.Telemetry) Runner {
	if tel == nil || tel.Tracer == nil {
		return r
	}
	return &TracingRunner{Runner: r, Tracer: tel.Tracer, Metrics: tel.Metrics}
}

func (t *TracingRunner) Run(ctx context.Context, program string, args ...string) (string, error) {
	ctx, span := t.start(ctx, program, args)
	defer span.End()
	out, err := t.Runner.Run(ctx, program, args...)
	t.finish(ctx, span, program, err)
	return out, err
}

func (t *TracingRunner) RunInput(ctx context.Context, r io.Reader, program string, args ...string) (string, error) {
	ctx, span := t.start(ctx, program, args)
	defer span.End()
	out, err := t.Runner.RunInput(ctx, r, program, args...)
	t.finish(ctx, span, program, err)
	return out, err
}

func (t *TracingRunner) start(ctx context.Context, program string, args []string) (context.Context, trace.Span) {
	return t.Tracer.Start(ctx, "exec "+program, trace.WithAttributes(
		attribute.String("command.program", program),
		attribute.String("command.args", strings.Join(args, " ")),
	))
}

func (t *TracingRunner) finish(ctx context.Context, span trace.Span, program string, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Int("command.exit_code", ExitCode(err)))
	}
	t.Metrics.RecordCommand(ctx, program, err == nil)
}
