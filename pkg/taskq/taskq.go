// Package taskq runs detached deferred tasks.
package taskq

import (
	"time"

	"github.com/vmstack/pve-orchestrator/pkg/log"
)

// Executor schedules a task to run once after a delay. Submission is
// fire-and-forget: there is no cancellation hook and no completion signal
// beyond the task's own logging.
type Executor interface {
	Defer(delay time.Duration, name string, fn func())
}

// Func adapts a function to the Executor interface.
type Func func(delay time.Duration, name string, fn func())

// Defer ...
func (f Func) Defer(delay time.Duration, name string, fn func()) {
	f(delay, name, fn)
}

type timerExecutor struct{}

// NewExecutor ...
func NewExecutor() Executor {
	return &timerExecutor{}
}

// Defer ...
func (timerExecutor) Defer(delay time.Duration, name string, fn func()) {
	time.AfterFunc(delay, func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("deferred task panicked", "task", name, "panic", r)
			}
		}()
		fn()
	})
}
