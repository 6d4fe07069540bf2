/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidActorSystemName is returned when the actor system name contains invalid characters.
	// A valid name must consist of only alphanumeric characters ([a-zA-Z0-9]), with optional
	// hyphens or underscores that are not leading.
	ErrInvalidActorSystemName = errors.New("invalid ActorSystem name, must contain only word characters (i.e. [a-zA-Z0-9] plus non-leading '-' or '_')")

	// ErrNameRequired is returned when an actor definition has no name.
	ErrNameRequired = errors.New("actor name is required")

	// ErrEmptyAlphabet is returned when an actor definition declares no message variant.
	ErrEmptyAlphabet = errors.New("message alphabet is empty")

	// ErrMissingHandler is returned when a declared message variant has no dispatch handler.
	// The alphabet and the handler set are generated together, so this is always a
	// construction-time defect, never a runtime one.
	ErrMissingHandler = errors.New("declared message variant has no handler")

	// ErrUndeclaredTag is returned when a handler or timer references a message variant
	// outside the declared alphabet.
	ErrUndeclaredTag = errors.New("message variant is not in the declared alphabet")

	// ErrInvalidTimerSpec is returned when a timer specification has a non-positive
	// period or a batch size below one.
	ErrInvalidTimerSpec = errors.New("invalid timer spec")

	// ErrInitFailure is returned when the actor's initialization hook fails during
	// the Starting phase. The instance never reaches Running.
	ErrInitFailure = errors.New("initialization failed")

	// ErrUnhandled indicates a message tag with no matching handler branch reached
	// dispatch. Exhaustiveness is guaranteed by construction; hitting this at
	// runtime is a programming error and is fatal to the instance.
	ErrUnhandled = errors.New("unhandled message variant")

	// ErrDead indicates that the actor is no longer alive or has been terminated.
	ErrDead = errors.New("actor is not alive")

	// ErrMailboxFull is returned by a bounded mailbox when it cannot accept
	// another message.
	ErrMailboxFull = errors.New("mailbox is full")

	// ErrActorAlreadyExists is returned when trying to create an actor with a name that already exists.
	ErrActorAlreadyExists = errors.New("actor already exists")

	// ErrActorSystemNotStarted indicates that an actor system has not been started before use.
	ErrActorSystemNotStarted = errors.New("actor system has not started yet")

	// ErrActorSystemAlreadyStarted is returned when attempting to start an actor system that is already running.
	ErrActorSystemAlreadyStarted = errors.New("actor system has already started")

	// ErrSchedulerNotStarted is returned when attempting to use the scheduler before it has started.
	ErrSchedulerNotStarted = errors.New("scheduler has not started")

	// ErrInvalidMessage indicates that a message is structurally or semantically invalid.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrInvalidTopology is returned when a topology descriptor fails validation.
	ErrInvalidTopology = errors.New("invalid topology")
)

// PanicError wraps a panic raised by a handler body. Handler faults are
// fatal to the instance and are surfaced through the join result; they are
// never retried.
type PanicError struct {
	err error
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError.
func NewPanicError(err error) *PanicError {
	return &PanicError{err: err}
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("handler panicked: %v", e.err)
}

// Unwrap returns the underlying error.
func (e *PanicError) Unwrap() error {
	return e.err
}
