package redis

import (
	"errors"
	"fmt"
)

// ErrSentinelUnsupported is returned when a sentinel URL is used with a
// provider that lacks sentinel support. It is reported before any
// connection attempt is made.
var ErrSentinelUnsupported = errors.New("redis: provider does not support sentinel connections")

// WrapError provides additional context to errors.
func WrapError(action, key string, err error) error {
	return fmt.Errorf("error while %s for key '%s': %w", action, key, err)
}
