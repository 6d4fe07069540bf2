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

// Status describes where an instance currently sits in its lifecycle.
// Instances move strictly forward:
// Created → Starting → Running → Stopping → Stopped, except that an
// initialization failure jumps straight from Starting to Stopped.
type Status int

const (
	// Created means the instance exists but initialization has not begun.
	Created Status = iota
	// Starting means the initialization hook is running.
	Starting
	// Running means the instance is processing mailbox messages.
	Running
	// Stopping means a stop was requested and the instance is winding down.
	Stopping
	// Stopped means the instance is terminated; the join has been released.
	Stopped
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Created:
		return "Created"
	case Starting:
		return "Starting"
	case Running:
		return "Running"
	case Stopping:
		return "Stopping"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// pidState models the bitmask used to track the PID's internal state. Instead
// of sprinkling multiple atomic.Bool fields across the struct, individual
// bits flip inside a single atomic.Uint32; the combined value is reduced to a
// Status by PID.Status.
type pidState uint32

// PID flag definitions. Each flag occupies a dedicated bit inside PID.state.
//
//   - startingState: initialization is underway or has completed.
//   - runningState:  initialization completed and messages may be processed.
//   - stoppingState: a stop request was observed; no further dispatch occurs.
//   - stoppedState:  terminal; the join channel has been closed.
const (
	startingState pidState = 1 << iota
	runningState
	stoppingState
	stoppedState
)

func (pid *PID) isStateSet(state pidState) bool {
	return pid.state.Load()&uint32(state) != 0
}

// setState sets or clears the given flag.
// It uses a CAS loop to avoid races when multiple goroutines try to update
// different PID state bits at the same time. If the flag already matches the
// requested state we exit early to avoid an unnecessary write.
func (pid *PID) setState(state pidState, enabled bool) {
	for {
		current := pid.state.Load()
		var desired uint32
		if enabled {
			desired = current | uint32(state)
		} else {
			desired = current &^ uint32(state)
		}
		if desired == current {
			return
		}
		if pid.state.CompareAndSwap(current, desired) {
			return
		}
	}
}

// Status reduces the internal state bits to the externally visible lifecycle
// status. Later lifecycle bits shadow earlier ones, so a stopping instance
// that is still flagged running reports Stopping.
func (pid *PID) Status() Status {
	state := pidState(pid.state.Load())
	switch {
	case state&stoppedState != 0:
		return Stopped
	case state&stoppingState != 0:
		return Stopping
	case state&runningState != 0:
		return Running
	case state&startingState != 0:
		return Starting
	default:
		return Created
	}
}
