package errors

import "fmt"

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrUnknownMode    = fmt.Errorf("unknown control mode")
	ErrUnknownRole    = fmt.Errorf("unknown session role")
	ErrUnknownAction  = fmt.Errorf("unknown primitive action")
	ErrInvalidRequest = fmt.Errorf("invalid request")
	ErrNotReady       = fmt.Errorf("controller not ready")
)
