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
	"regexp"

	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/actorsim/stampede/internal/syncmap"
	"github.com/actorsim/stampede/log"
)

// nameRegex matches valid system and actor names
var nameRegex = regexp.MustCompile("^[a-zA-Z0-9][a-zA-Z0-9-_]*$")

// ActorSystem hosts a set of running instances and the timer scheduler
// feeding their producers. It is the spawn and lookup surface of the
// runtime: instances are created through Spawn or SpawnTopology and found
// back by actor name through Actor.
type ActorSystem struct {
	name      string
	logger    log.Logger
	scheduler *scheduler
	// registry of live instances keyed by actor name
	pids    *syncmap.SyncMap[string, *PID]
	started *atomic.Bool
}

// Option configures an ActorSystem at construction time.
type Option func(*ActorSystem)

// WithSystemLogger sets the system logger.
func WithSystemLogger(logger log.Logger) Option {
	return func(system *ActorSystem) {
		system.logger = logger
	}
}

// NewActorSystem creates a stopped actor system with the given name. The
// name must start with an alphanumeric character and contain only word
// characters, '-' or '_'.
func NewActorSystem(name string, opts ...Option) (*ActorSystem, error) {
	if !nameRegex.MatchString(name) {
		return nil, ErrInvalidActorSystemName
	}
	system := &ActorSystem{
		name:    name,
		logger:  log.DefaultLogger,
		pids:    syncmap.New[string, *PID](),
		started: atomic.NewBool(false),
	}
	for _, opt := range opts {
		opt(system)
	}
	system.scheduler = newScheduler(system.logger)
	return system, nil
}

// Name returns the name of the actor system.
func (x *ActorSystem) Name() string {
	return x.name
}

// Logger returns the system logger.
func (x *ActorSystem) Logger() log.Logger {
	return x.logger
}

// Start starts the actor system and its timer scheduler.
func (x *ActorSystem) Start(ctx context.Context) error {
	if !x.started.CompareAndSwap(false, true) {
		return ErrActorSystemAlreadyStarted
	}
	x.scheduler.Start(ctx)
	x.logger.Infof("%s actor system started", x.name)
	return nil
}

// Stop stops every live instance concurrently, then the scheduler, then the
// system itself. Individual stop failures are combined and returned; the
// shutdown always runs to completion.
func (x *ActorSystem) Stop(ctx context.Context) error {
	if !x.started.CompareAndSwap(true, false) {
		return ErrActorSystemNotStarted
	}
	x.logger.Infof("%s actor system shutting down...", x.name)

	// cancel the timers first so no producer keeps refilling its mailbox
	// while the instances wind down
	x.scheduler.Stop(ctx)

	pids := x.pids.Values()
	errs := make([]error, len(pids))
	eg := new(errgroup.Group)
	for i, pid := range pids {
		eg.Go(func() error {
			if err := pid.Stop(ctx); err != nil {
				errs[i] = fmt.Errorf("failed to stop actor=(%s): %w", pid.Name(), err)
			}
			return nil
		})
	}
	_ = eg.Wait()
	x.pids.Reset()
	x.logger.Infof("%s actor system stopped", x.name)
	return multierr.Combine(errs...)
}

// Running returns true when the system has started and not yet stopped.
func (x *ActorSystem) Running() bool {
	return x.started.Load()
}

// Spawn creates and starts a single unwired instance of the given
// definition. The returned PID is live once Spawn returns nil: its timer,
// when the definition declares one, is already ticking. An unwired instance
// that produces messages drops them.
func (x *ActorSystem) Spawn(ctx context.Context, definition *Definition, opts ...SpawnOption) (*PID, error) {
	pid, err := x.createPID(definition, opts...)
	if err != nil {
		return nil, err
	}
	if err := x.startPID(ctx, pid); err != nil {
		return nil, err
	}
	return pid, nil
}

// createPID validates the definition and registers a Created-state pid. It
// does not start the instance; SpawnTopology relies on the split to install
// routes between creation and start.
func (x *ActorSystem) createPID(definition *Definition, opts ...SpawnOption) (*PID, error) {
	if !x.started.Load() {
		return nil, ErrActorSystemNotStarted
	}
	if definition == nil {
		return nil, ErrInvalidTopology
	}
	if err := definition.Validate(); err != nil {
		return nil, err
	}
	if _, ok := x.pids.Get(definition.Name()); ok {
		return nil, fmt.Errorf("%w: actor=(%s)", ErrActorAlreadyExists, definition.Name())
	}

	config := newSpawnConfig(x.logger, opts...)
	pid := newPID(definition, x, config)
	x.pids.Set(pid.Name(), pid)
	return pid, nil
}

// startPID runs the Starting phase of a created pid, deregistering it when
// initialization fails.
func (x *ActorSystem) startPID(ctx context.Context, pid *PID) error {
	if err := pid.start(ctx); err != nil {
		x.pids.Delete(pid.Name())
		return err
	}
	return nil
}

// Kill stops the named instance. It returns ErrDead when no live instance
// carries that name.
func (x *ActorSystem) Kill(ctx context.Context, name string) error {
	pid, ok := x.pids.Get(name)
	if !ok {
		return fmt.Errorf("%w: actor=(%s)", ErrDead, name)
	}
	return pid.Stop(ctx)
}

// Actor returns the live instance registered under the given actor name.
func (x *ActorSystem) Actor(name string) (*PID, error) {
	pid, ok := x.pids.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: actor=(%s)", ErrDead, name)
	}
	return pid, nil
}

// Actors returns all live instances.
func (x *ActorSystem) Actors() []*PID {
	return x.pids.Values()
}

// removePID deregisters a stopped instance. Called from the pid stop path.
func (x *ActorSystem) removePID(pid *PID) {
	if existing, ok := x.pids.Get(pid.Name()); ok && existing.Equals(pid) {
		x.pids.Delete(pid.Name())
	}
}
