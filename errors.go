package pugl

import (
	"errors"
	"fmt"

	"github.com/openchord/go-pugl/internal/native"
)

// Status is a native return code. The numbering matches the C
// library so codes can be compared against its documentation.
type Status uint32

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusUnknownError
	StatusBadBackend
	StatusBadConfiguration
	StatusBadParameter
	StatusBackendFailed
	StatusRegistrationFailed
	StatusRealizeFailed
	StatusSetFormatFailed
	StatusCreateContextFailed
	StatusUnsupportedType
)

var statusNames = map[Status]string{
	StatusSuccess:             "success",
	StatusFailure:             "non-fatal failure",
	StatusUnknownError:        "unknown system error",
	StatusBadBackend:          "invalid or missing backend",
	StatusBadConfiguration:    "invalid view configuration",
	StatusBadParameter:        "invalid parameter",
	StatusBackendFailed:       "backend initialization failed",
	StatusRegistrationFailed:  "class registration failed",
	StatusRealizeFailed:       "view creation failed",
	StatusSetFormatFailed:     "failed to set pixel format",
	StatusCreateContextFailed: "failed to create drawing context",
	StatusUnsupportedType:     "unsupported data type",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", uint32(s))
}

// StatusError is a native call that returned a non-success status.
type StatusError struct {
	Op     string
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pugl: %s: %s", e.Op, e.Status)
}

// statusErr maps a native status to an error, nil on success.
func statusErr(op string, st native.Status) error {
	if st == native.StatusSuccess {
		return nil
	}
	return &StatusError{Op: op, Status: Status(st)}
}

// ErrWorldNotRegistered is returned when a release refers to a world
// id the registry does not know, either never issued or already
// destroyed.
var ErrWorldNotRegistered = errors.New("world not registered")

// ErrWorldDestroyed is returned by World methods after the last view
// released the world.
var ErrWorldDestroyed = errors.New("world destroyed")

// ErrViewClosed is returned by View methods after Close.
var ErrViewClosed = errors.New("view closed")

// UnknownEventError is a native event whose type tag is outside the
// converted set. Kind is the numeric tag as delivered.
type UnknownEventError struct {
	Kind uint32
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("pugl: unknown event kind %d", e.Kind)
}
