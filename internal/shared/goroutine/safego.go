// Package goroutine launches background work with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/orris-inc/socialdash/internal/shared/logger"
)

// PanicError wraps a value recovered from a panicking goroutine.
type PanicError struct {
	Name  string
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("goroutine %s panicked: %v", e.Name, e.Value)
}

// Go runs fn in a new goroutine and delivers its result on the returned
// channel, which has room for exactly one value. A panic is reported as a
// *PanicError.
func Go(log logger.Interface, name string, fn func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer recoverAndLog(log, name, done)
		done <- fn()
	}()
	return done
}

func recoverAndLog(log logger.Interface, name string, done chan<- error) {
	r := recover()
	if r == nil {
		return
	}
	log.Errorw("goroutine panicked",
		"goroutine", name,
		"panic", fmt.Sprintf("%v", r),
		"stack", string(debug.Stack()),
	)
	if done != nil {
		done <- &PanicError{Name: name, Value: r}
	}
}
