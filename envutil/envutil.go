// Package envutil reads typed configuration from environment variables.
package envutil

import (
	"log/slog"
	"os"

	"github.com/amp-labs/amp-ranges/xform"
)

// get returns a Reader for the given environment variable key.
func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// Bool returns a Reader that parses the variable with xform.Bool.
func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), xform.Bool), opts)
}

// Choice returns a Reader whose trimmed, lowercased value must be one of choices.
func Choice(key string, choices []string, opts ...Option[string]) Reader[string] {
	return apply(Map(Map(Map(get(key), xform.TrimString), xform.ToLower), xform.OneOf(choices...)), opts)
}

// SlogLevel returns a Reader for the given environment variable key.
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(Map(Map(get(key), xform.TrimString), xform.ToLower), xform.SlogLevel), opts)
}
