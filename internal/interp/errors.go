// SPDX-License-Identifier: MPL-2.0

package interp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInterpreterNotFound is the sentinel error wrapped by NotFoundError.
var ErrInterpreterNotFound = errors.New("no python interpreter found")

// NotFoundError is returned when every interpreter candidate was probed
// and none of them exist.
type NotFoundError struct {
	// Probed lists the candidates that were checked, in probe order.
	Probed []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if len(e.Probed) == 0 {
		return ErrInterpreterNotFound.Error()
	}
	return fmt.Sprintf("%s (probed: %s)", ErrInterpreterNotFound.Error(), strings.Join(e.Probed, ", "))
}

// Unwrap returns ErrInterpreterNotFound so callers can use errors.Is
// for programmatic detection.
func (e *NotFoundError) Unwrap() error { return ErrInterpreterNotFound }
