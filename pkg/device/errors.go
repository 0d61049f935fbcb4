package device

import "errors"

var (
	// ErrNotFound indicates a device was not found
	ErrNotFound = errors.New("device not found")

	// ErrNotConnected indicates the controller has been closed
	ErrNotConnected = errors.New("controller not connected")

	// ErrUnsupported indicates an action is not supported by the device
	ErrUnsupported = errors.New("action not supported")

	// ErrValidation indicates a command payload failed schema validation
	ErrValidation = errors.New("validation error")
)
