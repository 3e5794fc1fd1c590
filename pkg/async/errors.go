package async

import "errors"

var (
	ErrTimeout         = errors.New("async: timed out waiting for future")
	ErrAlreadyResolved = errors.New("async: future already resolved")
	ErrPanic           = errors.New("async: worker panicked")
)
