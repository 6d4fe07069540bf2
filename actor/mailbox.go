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

// Mailbox defines the contract for an actor's message queue.
//
// Concurrency and ordering
//   - Implementations MUST be thread-safe for multiple concurrent producers
//     calling Enqueue (the timer producer and any wired senders).
//   - The lifecycle controller consumes from a single goroutine, so
//     implementations SHOULD optimize Dequeue for a single consumer (MPSC).
//   - Ordering is FIFO with respect to a single producer; no ordering is
//     guaranteed across producers.
//
// Non-blocking behavior
//   - Enqueue MUST NOT block. Bounded implementations return an error when
//     full instead of blocking; unbounded implementations always return nil.
//   - Dequeue MUST NOT block and returns nil when the mailbox is empty. The
//     controller polls Dequeue in its processing loop.
//
// Resource management
//   - Dispose releases resources held by the implementation. After Dispose
//     the mailbox must not be used; pending contents are dropped without
//     any drain guarantee.
type Mailbox interface {
	// Enqueue pushes a message into the mailbox. Safe for concurrent
	// producers; bounded implementations return ErrMailboxFull when full.
	Enqueue(msg *ReceiveContext) error
	// Dequeue fetches the next message or nil when the mailbox is empty.
	// Called by exactly one consumer goroutine.
	Dequeue() (msg *ReceiveContext)
	// IsEmpty reports whether the mailbox currently has no messages.
	// This is a best-effort snapshot under concurrency.
	IsEmpty() bool
	// Len returns a snapshot of the number of messages in the mailbox.
	// Implementations MAY return an approximate value under concurrency.
	Len() int64
	// Dispose drops any pending messages and releases resources. The mailbox
	// MUST NOT be used after Dispose returns.
	Dispose()
}
