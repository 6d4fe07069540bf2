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
	"sync/atomic"
)

// mpscNode is a node of the intrusive queue backing UnboundedMailbox.
type mpscNode struct {
	value *ReceiveContext
	next  atomic.Pointer[mpscNode]
}

// UnboundedMailbox is a lock-free multi-producer, single-consumer (MPSC)
// FIFO queue used as the default actor mailbox.
//
// Many producer goroutines may call Enqueue concurrently while exactly one
// consumer goroutine calls Dequeue. Operations are non-blocking and rely on
// atomic pointer updates only.
//
// The mailbox is unbounded: if producers outpace the consumer, memory usage
// can grow without limit. The runtime deliberately applies no backpressure;
// delivery is fire-and-forget.
//
// The zero value is not ready for use; always construct via
// NewUnboundedMailbox.
//
// Reference: https://concurrencyfreaks.blogspot.com/2014/04/multi-producer-single-consumer-queue.html
type UnboundedMailbox struct {
	head atomic.Pointer[mpscNode]
	tail atomic.Pointer[mpscNode]
}

// enforce compilation error
var _ Mailbox = (*UnboundedMailbox)(nil)

// NewUnboundedMailbox returns a new, initialized UnboundedMailbox.
func NewUnboundedMailbox() *UnboundedMailbox {
	stub := new(mpscNode)
	mailbox := new(UnboundedMailbox)
	mailbox.head.Store(stub)
	mailbox.tail.Store(stub)
	return mailbox
}

// Enqueue appends the given message to the tail of the mailbox. It is safe
// for concurrent producers, never blocks and always returns nil.
func (m *UnboundedMailbox) Enqueue(value *ReceiveContext) error {
	node := &mpscNode{value: value}
	prev := m.tail.Swap(node)
	prev.next.Store(node)
	return nil
}

// Dequeue removes and returns the message at the head of the mailbox, or nil
// when empty. Dequeue must be called by exactly one consumer goroutine.
func (m *UnboundedMailbox) Dequeue() *ReceiveContext {
	head := m.head.Load()
	next := head.next.Load()
	if next == nil {
		return nil
	}

	m.head.Store(next)
	value := next.value
	next.value = nil // release for the garbage collector
	return value
}

// IsEmpty reports whether the mailbox currently holds no messages. The
// result is a snapshot that may be stale immediately under concurrent
// producers.
func (m *UnboundedMailbox) IsEmpty() bool {
	return m.head.Load().next.Load() == nil
}

// Len returns an approximate number of messages currently in the mailbox.
// This is an O(n) traversal racing with producers; avoid it in hot paths.
func (m *UnboundedMailbox) Len() int64 {
	var count int64
	for node := m.head.Load().next.Load(); node != nil; node = node.next.Load() {
		count++
	}
	return count
}

// Dispose drops all pending messages. The single consumer must have stopped
// dequeuing before Dispose is called.
func (m *UnboundedMailbox) Dispose() {
	for m.Dequeue() != nil { // nolint
	}
}
