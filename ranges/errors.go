package ranges

import (
	"fmt"

	"github.com/amp-labs/amp-ranges/codec"
	"github.com/amp-labs/amp-ranges/errors"
	"github.com/amp-labs/amp-ranges/logger"
)

// ErrTypeMismatch is returned when a range built on one codec is added to a
// collection of another. It wraps errors.ErrWrongType.
var ErrTypeMismatch = fmt.Errorf("%w: range kind mismatch", errors.ErrWrongType)

func typeMismatch[V any](index int, expected, received codec.Codec[V]) error {
	return logger.AnnotateError(
		fmt.Errorf("%w: range %d uses %s, collection holds %s",
			ErrTypeMismatch, index, codec.Name(received), codec.Name(expected)),
		"index", index,
		"expected", codec.Name(expected),
		"received", codec.Name(received))
}
