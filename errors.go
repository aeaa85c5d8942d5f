package qmcgo

import "errors"

var (
	// ErrNoKernels is returned when a container is created without any
	// kernels.
	ErrNoKernels = errors.New("qmcgo: container needs at least one kernel")
)
