package llm

import "context"

// Gateway sends one prompt to a chat model and returns its answer.
// Failures are returned as *Error so callers can tell configuration,
// connectivity and service faults apart.
type Gateway interface {
	Send(ctx context.Context, prompt string, bootstrap bool) (string, error)
}

// Notifier receives a human-readable line before each request goes out.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) { f(msg) }
