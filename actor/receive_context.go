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

	"github.com/actorsim/stampede/log"
)

// NoSender marks a message that did not originate from another actor, e.g.
// an external Tell or a timer-synthesized message.
var NoSender *PID

// ReceiveContext carries a single message through a handler invocation.
//
// A ReceiveContext is only valid for the duration of the handler call; the
// runtime recycles it afterwards. Handlers must not retain it.
type ReceiveContext struct {
	ctx     context.Context
	message Message
	sender  *PID
	self    *PID
	outputs []Message
	err     error
}

// Context returns the context attached to the message.
func (rctx *ReceiveContext) Context() context.Context {
	return rctx.ctx
}

// Message returns the message being dispatched.
func (rctx *ReceiveContext) Message() Message {
	return rctx.message
}

// Sender returns the pid of the sending instance, or NoSender when the
// message was synthesized by a timer or sent from outside the system.
func (rctx *ReceiveContext) Sender() *PID {
	return rctx.sender
}

// Self returns the pid of the instance handling the message.
func (rctx *ReceiveContext) Self() *PID {
	return rctx.self
}

// Logger returns the logger of the instance handling the message.
func (rctx *ReceiveContext) Logger() log.Logger {
	return rctx.self.Logger()
}

// Produce records a message bound for the instance's downstream peers. After
// the handler body completes the lifecycle controller forwards every
// recorded message along the instance's outbound edges; when the instance
// has no outbound edge the messages are dropped, which reproduces the
// unwired output of the topology compiler.
func (rctx *ReceiveContext) Produce(message Message) {
	rctx.outputs = append(rctx.outputs, message)
}

// Err reports a handler failure to the runtime. A reported failure is fatal
// to the instance, exactly like a panic: no retry, the instance stops and
// the error is surfaced through the join result.
func (rctx *ReceiveContext) Err(err error) {
	rctx.err = err
}

// getError returns the error reported by the handler, if any.
func (rctx *ReceiveContext) getError() error {
	return rctx.err
}
