package domain

import "errors"

// ErrNoDevice is returned when no attached keyboard completes a protocol
// handshake.
var ErrNoDevice = errors.New("no compatible keyboard found")
