package llm

import (
	"errors"
	"fmt"
)

// Kind classifies a gateway failure.
type Kind int

const (
	KindConfiguration Kind = iota + 1
	KindConnectivity
	KindService
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindConnectivity:
		return "connectivity"
	case KindService:
		return "service"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is against *Error.
var (
	ErrConfiguration = errors.New("model gateway configuration error")
	ErrConnectivity  = errors.New("model gateway connectivity error")
	ErrService       = errors.New("model gateway service error")
)

// Error is a classified gateway failure.
type Error struct {
	Kind Kind
	// StatusCode is set for service errors caused by a non-2xx reply.
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("model gateway %s error: http %d: %v", e.Kind, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("model gateway %s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	switch target {
	case ErrConfiguration:
		return e.Kind == KindConfiguration
	case ErrConnectivity:
		return e.Kind == KindConnectivity
	case ErrService:
		return e.Kind == KindService
	}
	return false
}

// KindOf returns the Kind of the first *Error in err's chain, or zero.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return 0
}
