package page

import (
	"sync"

	"github.com/bnema/awards-vote-cli/internal/ports"
)

type ToastLevel int

const (
	ToastSuccess ToastLevel = iota
	ToastWarn
	ToastError
)

type Toast struct {
	Level   ToastLevel
	Message string
}

// Toasts collects notifications raised while a command runs so the model can
// show them once the command's message arrives.
type Toasts struct {
	mu      sync.Mutex
	pending []Toast
}

var _ ports.Notifier = (*Toasts)(nil)

func (t *Toasts) Success(message string) { t.push(ToastSuccess, message) }
func (t *Toasts) Warn(message string)    { t.push(ToastWarn, message) }
func (t *Toasts) Error(message string)   { t.push(ToastError, message) }

func (t *Toasts) push(level ToastLevel, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = append(t.pending, Toast{Level: level, Message: message})
}

func (t *Toasts) Drain() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	drained := t.pending
	t.pending = nil
	return drained
}
