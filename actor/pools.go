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
	"sync"
)

// contextPool recycles ReceiveContext values across handler invocations to
// keep the per-message allocation cost down on the hot path.
var contextPool = sync.Pool{
	New: func() any {
		return new(ReceiveContext)
	},
}

// getContext fetches a ReceiveContext from the pool and primes it.
func getContext(ctx context.Context, sender, self *PID, message Message) *ReceiveContext {
	rctx := contextPool.Get().(*ReceiveContext)
	rctx.ctx = ctx
	rctx.sender = sender
	rctx.self = self
	rctx.message = message
	return rctx
}

// releaseContext scrubs the given ReceiveContext and returns it to the pool.
func releaseContext(rctx *ReceiveContext) {
	rctx.ctx = nil
	rctx.sender = nil
	rctx.self = nil
	rctx.message = nil
	rctx.outputs = nil
	rctx.err = nil
	contextPool.Put(rctx)
}
