package domain

import "fmt"

type PageState int

const (
	StateAnonymous PageState = iota
	StateRedirecting
	StateReady
	StateSubmitting
)

func (s PageState) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateRedirecting:
		return "redirecting"
	case StateReady:
		return "ready"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func (s PageState) Authenticated() bool {
	return s == StateReady || s == StateSubmitting
}

func (s PageState) Busy() bool {
	return s == StateSubmitting
}

func (s PageState) CanTransitionTo(next PageState) bool {
	switch s {
	case StateAnonymous:
		return next == StateRedirecting || next == StateReady
	case StateRedirecting:
		return next == StateReady || next == StateAnonymous
	case StateReady:
		return next == StateSubmitting || next == StateAnonymous || next == StateReady
	case StateSubmitting:
		return next == StateReady
	default:
		return false
	}
}

func (s PageState) Transition(next PageState) (PageState, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return next, nil
}
