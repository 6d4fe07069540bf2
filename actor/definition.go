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
	"context"
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
)

// Handler processes one message taken from the mailbox. Handlers run
// strictly sequentially per instance; they never overlap themselves and may
// freely touch the state they were constructed with.
type Handler func(rctx *ReceiveContext)

// PreStartHook runs once during the Starting phase, before any message is
// processed. Returning an error aborts the spawn: the instance goes straight
// to Stopped and never reaches Running.
type PreStartHook func(ctx context.Context) error

// PostStopHook runs once during the Stopping phase, after the last handled
// message.
type PostStopHook func(ctx context.Context) error

// TimerSpec describes the timer-driven producer attached to an actor
// definition: every Period, BatchSize copies of Tag are synthesized into the
// actor's own mailbox. Enqueue is fire-and-forget; ticks aimed at a stopped
// instance are silently discarded.
type TimerSpec struct {
	// Tag is the producing message variant the timer synthesizes.
	Tag Tag
	// Period is the tick interval. Must be greater than zero.
	Period time.Duration
	// BatchSize is the number of messages synthesized per tick. Must be at
	// least one.
	BatchSize int
}

// Validate checks the timer specification invariants.
func (spec TimerSpec) Validate() error {
	if spec.Tag == "" {
		return fmt.Errorf("%w: missing tag", ErrInvalidTimerSpec)
	}
	if spec.Period <= 0 {
		return fmt.Errorf("%w: period must be greater than zero", ErrInvalidTimerSpec)
	}
	if spec.BatchSize < 1 {
		return fmt.Errorf("%w: batch size must be at least one", ErrInvalidTimerSpec)
	}
	return nil
}

// Definition is the immutable description of a generated actor: its name,
// its closed message alphabet, one handler per declared variant, an optional
// timer specification and the lifecycle hooks the generated module exposes
// for customization.
//
// A Definition is built fluently and validated at spawn time:
//
//	def := actor.NewDefinition("source").
//		WithAlphabet(TagData).
//		WithHandler(TagData, onData).
//		WithTimer(actor.TimerSpec{Tag: TagData, Period: 20 * time.Millisecond, BatchSize: 1})
//
// Once handed to Spawn a Definition must not be modified.
type Definition struct {
	name     string
	alphabet mapset.Set[Tag]
	handlers map[Tag]Handler
	timer    *TimerSpec
	preStart PreStartHook
	postStop PostStopHook
}

// NewDefinition creates a Definition with the given actor name.
func NewDefinition(name string) *Definition {
	return &Definition{
		name:     name,
		alphabet: mapset.NewSet[Tag](),
		handlers: make(map[Tag]Handler),
	}
}

// WithAlphabet declares the closed set of message variants the actor
// accepts.
func (d *Definition) WithAlphabet(tags ...Tag) *Definition {
	d.alphabet.Append(tags...)
	return d
}

// WithHandler attaches the dispatch handler for the given variant.
func (d *Definition) WithHandler(tag Tag, handler Handler) *Definition {
	d.handlers[tag] = handler
	return d
}

// WithTimer attaches a timer-driven producer specification.
func (d *Definition) WithTimer(spec TimerSpec) *Definition {
	d.timer = &spec
	return d
}

// WithPreStart sets the initialization hook. This is where a generated
// module constructs its callback capability; a construction error surfaces
// from Spawn as an initialization failure.
func (d *Definition) WithPreStart(hook PreStartHook) *Definition {
	d.preStart = hook
	return d
}

// WithPostStop sets the termination hook.
func (d *Definition) WithPostStop(hook PostStopHook) *Definition {
	d.postStop = hook
	return d
}

// Name returns the actor name.
func (d *Definition) Name() string {
	return d.name
}

// Alphabet returns a copy of the declared message alphabet.
func (d *Definition) Alphabet() mapset.Set[Tag] {
	return d.alphabet.Clone()
}

// TimerSpec returns a copy of the timer specification and whether one is
// declared.
func (d *Definition) TimerSpec() (TimerSpec, bool) {
	if d.timer == nil {
		return TimerSpec{}, false
	}
	return *d.timer, true
}

// Validate checks that the definition is well-formed: it has a name, a
// non-empty alphabet, exactly one handler per declared variant and no
// handler outside the alphabet, and a valid timer bound to a declared
// variant when one is present.
func (d *Definition) Validate() error {
	if d.name == "" {
		return ErrNameRequired
	}
	if d.alphabet.Cardinality() == 0 {
		return fmt.Errorf("actor=(%s): %w", d.name, ErrEmptyAlphabet)
	}
	for _, tag := range d.alphabet.ToSlice() {
		if d.handlers[tag] == nil {
			return fmt.Errorf("actor=(%s) variant=(%s): %w", d.name, tag, ErrMissingHandler)
		}
	}
	for tag := range d.handlers {
		if !d.alphabet.Contains(tag) {
			return fmt.Errorf("actor=(%s) variant=(%s): %w", d.name, tag, ErrUndeclaredTag)
		}
	}
	if d.timer != nil {
		if err := d.timer.Validate(); err != nil {
			return fmt.Errorf("actor=(%s): %w", d.name, err)
		}
		if !d.alphabet.Contains(d.timer.Tag) {
			return fmt.Errorf("actor=(%s) timer variant=(%s): %w", d.name, d.timer.Tag, ErrUndeclaredTag)
		}
	}
	return nil
}

// handler returns the dispatch handler for the given variant or nil.
func (d *Definition) handler(tag Tag) Handler {
	return d.handlers[tag]
}
