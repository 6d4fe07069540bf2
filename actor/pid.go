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
	"runtime"
	"sync"
	stdatomic "sync/atomic"
	"time"

	"github.com/flowchartsman/retry"
	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/actorsim/stampede/log"
)

// specifies the state in which the PID is
// regarding message processing
const (
	// idle means there are no messages to process
	idle int32 = iota
	// busy means the PID is processing messages
	busy
)

// PID is one live execution of a Definition: the lifecycle controller that
// owns the instance's private state for the duration of the run.
//
// A PID drives its instance through
// Created → Starting → Running → Stopping → Stopped. It is the single
// consumer of the instance's mailbox, so handler invocations for the same
// instance never overlap; mutual exclusion is structural, not lock-based.
// Distinct PIDs execute fully concurrently with respect to each other.
type PID struct {
	// specifies the definition this instance executes
	definition *Definition

	// unique instance identity
	id   string
	name string

	// specifies the actor mailbox
	mailbox Mailbox

	// the owning actor system
	system *ActorSystem

	// specifies the logger to use
	logger log.Logger

	// lifecycle state bits, reduced to Status by pid_state.go
	state stdatomic.Uint32

	// atomic flag indicating whether the instance is processing messages
	processing stdatomic.Int32

	// observable progress counter: increases by exactly one per successfully
	// handled message and is never reset
	dispatchCount atomic.Int64

	// initialization settings
	initMaxRetries atomic.Int32
	initTimeout    atomic.Duration

	startedAt              atomic.Int64
	latestDispatchTimeNano atomic.Int64

	// outbound edge installed before the instance starts; nil reproduces
	// the unwired compiler output
	route *route

	// join plumbing
	stopLocker  sync.Mutex
	stopClaimed bool
	doneCh      chan struct{}
	joinErr     error
}

// newPID creates a pid in the Created state. Routes, when any, must be
// installed before start is called.
func newPID(definition *Definition, system *ActorSystem, config *spawnConfig) *PID {
	pid := &PID{
		definition: definition,
		id:         uuid.NewString(),
		name:       definition.Name(),
		mailbox:    config.mailbox,
		system:     system,
		logger:     config.logger,
		doneCh:     make(chan struct{}),
	}
	pid.initMaxRetries.Store(int32(config.initMaxRetries))
	pid.initTimeout.Store(config.initTimeout)
	return pid
}

// ID returns the unique identifier of the instance.
func (pid *PID) ID() string {
	return pid.id
}

// Name returns the actor name of the instance.
func (pid *PID) Name() string {
	return pid.name
}

// Equals compares two pids for identity.
func (pid *PID) Equals(to *PID) bool {
	if pid == nil || to == nil {
		return pid == to
	}
	return pid.id == to.id
}

// Logger returns the logger of the instance.
func (pid *PID) Logger() log.Logger {
	return pid.logger
}

// DispatchCount returns the number of messages successfully handled so far.
// The counter only ever grows; it exists purely as an observable progress
// counter.
func (pid *PID) DispatchCount() int64 {
	return pid.dispatchCount.Load()
}

// Uptime returns the number of seconds since the instance reached Running,
// or zero when it never started or has stopped.
func (pid *PID) Uptime() int64 {
	if pid.isStateSet(runningState) && !pid.isStateSet(stoppedState) {
		return int64(time.Since(time.Unix(pid.startedAt.Load(), 0)).Seconds())
	}
	return 0
}

// LatestActivityTime returns the time the last message was handled. The
// zero time is returned when no message has been handled yet.
func (pid *PID) LatestActivityTime() time.Time {
	nanos := pid.latestDispatchTimeNano.Load()
	if nanos == 0 {
		return time.Time{}
	}
	return time.Unix(0, nanos)
}

// Done returns a channel that is closed once the instance reaches Stopped.
// This is the join handle of the spawn contract.
func (pid *PID) Done() <-chan struct{} {
	return pid.doneCh
}

// Err returns the join result. It is only meaningful after Done is closed:
// nil for a clean stop, the wrapped handler fault otherwise.
func (pid *PID) Err() error {
	pid.stopLocker.Lock()
	defer pid.stopLocker.Unlock()
	return pid.joinErr
}

// Tell drops the given message into the instance's mailbox, fire-and-forget.
//
// Delivery to a stopping or stopped instance is not an error: the enqueue
// attempt succeeds and the message is silently discarded, per the delivery
// failure contract. Ordering is FIFO per sender; there is no ordering
// guarantee across senders.
func (pid *PID) Tell(ctx context.Context, message Message) error {
	if message == nil {
		return ErrInvalidMessage
	}
	return pid.deliver(ctx, NoSender, message)
}

// deliver enqueues a message on behalf of the given sender and schedules a
// processing pass. Delivery failures are discarded, never surfaced.
func (pid *PID) deliver(ctx context.Context, sender *PID, message Message) error {
	if pid.isStateSet(stoppingState | stoppedState) {
		pid.logger.Debugf("dropping message=(%s) sent to stopped actor=(%s)", message.Tag(), pid.name)
		return nil
	}

	receiveCtx := getContext(ctx, sender, pid, message)
	if err := pid.mailbox.Enqueue(receiveCtx); err != nil {
		releaseContext(receiveCtx)
		pid.logger.Warnf("mailbox of actor=(%s) rejected message=(%s): %v", pid.name, message.Tag(), err)
		return nil
	}
	pid.schedule()
	return nil
}

// start runs the Starting phase: the initialization hook (with bounded
// retry), the transition to Running and the registration of the
// timer-driven producer when the definition declares one. On initialization
// failure the instance goes straight to Stopped and the error is returned to
// the caller of Spawn.
func (pid *PID) start(ctx context.Context) error {
	pid.setState(startingState, true)
	pid.logger.Infof("starting actor=(%s)...", pid.name)

	if hook := pid.definition.preStart; hook != nil {
		cctx, cancel := context.WithTimeout(ctx, pid.initTimeout.Load())
		retrier := retry.NewRetrier(int(pid.initMaxRetries.Load()), 100*time.Millisecond, pid.initTimeout.Load())
		err := retrier.RunContext(cctx, func(ctx context.Context) error {
			return hook(ctx)
		})
		cancel()
		if err != nil {
			e := fmt.Errorf("%w: actor=(%s): %w", ErrInitFailure, pid.name, err)
			pid.logger.Errorf("failed to initialize actor=(%s): %v", pid.name, err)
			pid.stopLocker.Lock()
			pid.joinErr = e
			pid.setState(stoppedState, true)
			close(pid.doneCh)
			pid.stopLocker.Unlock()
			return e
		}
	}

	pid.setState(runningState, true)
	pid.startedAt.Store(time.Now().Unix())

	if spec, ok := pid.definition.TimerSpec(); ok {
		if err := pid.system.scheduler.scheduleTimer(pid, spec); err != nil {
			return pid.abortStart(err)
		}
	}

	pid.logger.Infof("actor=(%s) successfully started", pid.name)
	return nil
}

// abortStart tears the instance down when the Starting phase fails after the
// running flag was already set.
func (pid *PID) abortStart(cause error) error {
	e := fmt.Errorf("%w: actor=(%s): %w", ErrInitFailure, pid.name, cause)
	_ = pid.doStop(context.Background(), nil, false)
	return e
}

// Stop terminates the instance: Stopping → Stopped. Pending mailbox contents
// are dropped without any drain guarantee, the timer-driven producer (when
// any) is canceled and the join is released. Stopping an already stopped
// instance is a no-op.
func (pid *PID) Stop(ctx context.Context) error {
	return pid.doStop(ctx, nil, false)
}

// doStop is the single stop path. cause carries the handler fault when the
// stop is failure-initiated; fromLoop is true when the call originates from
// inside the processing loop goroutine, in which case waiting for the loop
// to go idle would deadlock. Exactly one caller claims the teardown; every
// other caller either joins on doneCh or, from the loop, parks so the
// claiming goroutine can finish.
func (pid *PID) doStop(ctx context.Context, cause error, fromLoop bool) error {
	pid.stopLocker.Lock()
	if pid.isStateSet(stoppedState) {
		pid.stopLocker.Unlock()
		return nil
	}
	if pid.stopClaimed {
		if fromLoop {
			// the claiming goroutine is waiting for this loop to park;
			// keep the fault for the join and let it proceed
			if cause != nil && pid.joinErr == nil {
				pid.joinErr = cause
			}
			pid.stopLocker.Unlock()
			return nil
		}
		pid.stopLocker.Unlock()
		// another goroutine is already stopping the instance; wait for it
		select {
		case <-pid.doneCh:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	pid.stopClaimed = true
	pid.setState(stoppingState, true)
	pid.stopLocker.Unlock()

	pid.logger.Infof("stopping actor=(%s)...", pid.name)
	pid.system.scheduler.cancelTimer(pid)

	// wait for the in-flight handler invocation, if any, to complete; the
	// processing loop observes the stopping flag and parks itself
	if !fromLoop {
		for pid.processing.Load() == busy {
			select {
			case <-ctx.Done():
				pid.stopLocker.Lock()
				pid.stopClaimed = false
				pid.stopLocker.Unlock()
				return ctx.Err()
			default:
				runtime.Gosched()
			}
		}
	}

	// pending messages are dropped: no drain guarantee
	pid.mailbox.Dispose()

	var hookErr error
	if hook := pid.definition.postStop; hook != nil {
		hookErr = hook(ctx)
	}

	pid.stopLocker.Lock()
	switch {
	case cause != nil:
		pid.joinErr = cause
	case hookErr != nil && pid.joinErr == nil:
		pid.joinErr = hookErr
	}
	pid.setState(stoppedState, true)
	close(pid.doneCh)
	pid.stopLocker.Unlock()

	pid.system.removePID(pid)
	pid.logger.Infof("actor=(%s) stopped", pid.name)
	return nil
}

// schedule starts a processing loop when transitioning from idle to busy.
// If another loop is already running the call exits early.
func (pid *PID) schedule() {
	if pid.processing.CompareAndSwap(idle, busy) {
		go pid.processLoop()
	}
}

// processLoop extracts every message from the mailbox, one at a time, and
// dispatches it. The loop parks itself (idle) when the mailbox drains or a
// stop is observed; schedule revives it on the next delivery.
func (pid *PID) processLoop() {
	for {
		if pid.isStateSet(stoppingState | stoppedState) {
			pid.processing.Store(idle)
			return
		}

		received := pid.mailbox.Dequeue()
		if received == nil {
			// if no more messages, change busy state to idle
			pid.processing.Store(idle)
			// check if new messages were added in the meantime and restart
			// processing
			if !pid.mailbox.IsEmpty() && !pid.isStateSet(stoppingState|stoppedState) &&
				pid.processing.CompareAndSwap(idle, busy) {
				continue
			}
			return
		}

		if err := pid.dispatch(received); err != nil {
			ctx := received.Context()
			releaseContext(received)
			pid.logger.Errorf("actor=(%s) handler fault: %v", pid.name, err)
			_ = pid.doStop(ctx, err, true)
			pid.processing.Store(idle)
			return
		}
		releaseContext(received)
	}
}

// dispatch runs the handler branch matching the message tag, then counts the
// message and forwards anything the handler produced. The observable order
// is exactly: callback, counter increment, downstream forwarding.
func (pid *PID) dispatch(received *ReceiveContext) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = NewPanicError(e)
				return
			}
			err = NewPanicError(fmt.Errorf("%v", r))
		}
	}()

	tag := received.Message().Tag()
	handler := pid.definition.handler(tag)
	if handler == nil {
		// the alphabet and the handler set are generated together, so this
		// can only be a programming error
		return NewPanicError(fmt.Errorf("actor=(%s) tag=(%s): %w", pid.name, tag, ErrUnhandled))
	}

	handler(received)
	if ferr := received.getError(); ferr != nil {
		return ferr
	}

	pid.dispatchCount.Inc()
	pid.latestDispatchTimeNano.Store(time.Now().UnixNano())
	pid.routeOutputs(received)
	return nil
}

// routeOutputs forwards the messages recorded by the handler along the
// instance's outbound edge. An instance with no outbound edge drops its
// production, which is exactly what the unwired compiler output does.
func (pid *PID) routeOutputs(received *ReceiveContext) {
	outputs := received.outputs
	if len(outputs) == 0 {
		return
	}
	if pid.route == nil {
		pid.logger.Debugf("actor=(%s) produced %d message(s) but has no outbound edge; dropping", pid.name, len(outputs))
		return
	}
	for _, message := range outputs {
		delivered := pid.route.translate(message)
		for _, target := range pid.route.recipients() {
			_ = target.deliver(received.Context(), pid, delivered)
		}
	}
}

// installRoute wires the instance's outbound edge. It must be called before
// start; the processing loop reads the route without synchronization.
func (pid *PID) installRoute(r *route) {
	pid.route = r
}
