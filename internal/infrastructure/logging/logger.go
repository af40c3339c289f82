package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/shopmate/internal/ports"
)

// Options configures the zerolog adapter.
type Options struct {
	Writer        io.Writer
	Level         string
	HumanReadable bool
	Layer         string
	Component     string
}

// Logger implements ports.Logger using zerolog.
type Logger struct {
	base   zerolog.Logger
	fields []interface{}
	layer  string
}

// New creates a Logger adapter with the supplied options.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	fields := make([]interface{}, 0, 2)
	if opts.Component != "" {
		fields = append(fields, "component", opts.Component)
	}
	layer := opts.Layer
	if layer == "" {
		layer = "infrastructure"
	}

	return &Logger{
		base:   zerolog.New(output).Level(level).With().Timestamp().Logger(),
		fields: fields,
		layer:  layer,
	}, nil
}

// Debug emits a debug log entry.
func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.DebugLevel, msg, fields...)
}

// Info emits an info log entry.
func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.InfoLevel, msg, fields...)
}

// Warn emits a warning log entry.
func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.WarnLevel, msg, fields...)
}

// Error emits an error log entry.
func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.log(ctx, zerolog.ErrorLevel, msg, fields...)
}

// With derives a new logger with persistent fields. A "layer" pair replaces
// the layer instead of being duplicated.
func (l *Logger) With(fields ...interface{}) ports.Logger {
	if l == nil {
		return &NoOpLogger{}
	}
	next := make([]interface{}, len(l.fields), len(l.fields)+len(fields))
	copy(next, l.fields)
	layer := l.layer
	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok && key == "layer" {
			if value, ok := fields[i+1].(string); ok {
				layer = value
				continue
			}
		}
		next = append(next, fields[i], fields[i+1])
	}
	return &Logger{
		base:   l.base,
		fields: next,
		layer:  layer,
	}
}

func (l *Logger) log(ctx context.Context, level zerolog.Level, msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if event == nil {
		return
	}
	event = event.Str("layer", l.layer)
	if id := ports.GetCorrelationID(ctx); id != "" {
		event = event.Str("correlation_id", id)
	}
	event = appendPairs(event, l.fields)
	event = appendPairs(event, fields)
	event.Msg(msg)
}

func appendPairs(event *zerolog.Event, pairs []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok || key == "" {
			continue
		}
		switch value := pairs[i+1].(type) {
		case error:
			event = event.AnErr(key, value)
		case fmt.Stringer:
			event = event.Stringer(key, value)
		default:
			event = event.Interface(key, value)
		}
	}
	return event
}

// compile-time assurance
var _ ports.Logger = (*Logger)(nil)
