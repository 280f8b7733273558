package logger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// AnnotateError wraps an error with structured logging attributes (slog key-value pairs).
// When the returned error is logged through a logger configured by this package,
// the attributes are pulled out of the error and included in the log output.
//
// Args should be key-value pairs compatible with slog (string keys followed by values).
//
// Example:
//
//	return AnnotateError(err, "index", i, "expected", name)
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var errAttrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		errAttrs = append(errAttrs, attr)

		return true
	})

	return &slogError{
		err:   err,
		attrs: errAttrs,
	}
}

// slogError wraps an error with structured logging attributes.
// It supports errors.Is and errors.As through Unwrap.
type slogError struct {
	err   error
	attrs []slog.Attr
}

func (s *slogError) Error() string {
	return s.err.Error()
}

func (s *slogError) Unwrap() error {
	return s.err
}

var _ error = (*slogError)(nil)

// slogErrorLogger is a slog.Handler decorator that pulls the attributes out of
// annotated errors and adds them to the record. Errors joined with errors.Join
// (such as the ones errors.Collection produces) are logged one per indexed key,
// "error[0]", "error[1]" and so on, each contributing its own attributes.
type slogErrorLogger struct {
	inner slog.Handler
}

var _ slog.Handler = (*slogErrorLogger)(nil)

func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var (
		attrs   []slog.Attr
		changed bool
	)

	record.Attrs(func(attr slog.Attr) bool {
		err, ok := attr.Value.Any().(error)
		if !ok {
			attrs = append(attrs, attr)

			return true
		}

		expanded, ok := expandError(attr.Key, err)
		if ok {
			changed = true
		}

		attrs = append(attrs, expanded...)

		return true
	})

	if !changed {
		return s.inner.Handle(ctx, record)
	}

	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	r.AddAttrs(attrs...)

	return s.inner.Handle(ctx, r)
}

// expandError returns the attributes to log for err under key. The boolean is
// false when err carries no annotations and is logged unchanged.
func expandError(key string, err error) ([]slog.Attr, bool) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok { //nolint:errorlint
		var attrs []slog.Attr

		for i, child := range joined.Unwrap() {
			expanded, _ := expandError(fmt.Sprintf("%s[%d]", key, i), child)
			attrs = append(attrs, expanded...)
		}

		return attrs, true
	}

	var se *slogError
	if !errors.As(err, &se) {
		return []slog.Attr{slog.Any(key, err)}, false
	}

	attrs := make([]slog.Attr, 0, len(se.attrs)+1)
	attrs = append(attrs, slog.Any(key, err.Error()))
	attrs = append(attrs, se.attrs...)

	return attrs, true
}

func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithAttrs(attrs)}
}

func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithGroup(name)}
}
