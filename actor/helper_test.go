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
	"testing"

	"go.uber.org/goleak"

	"github.com/actorsim/stampede/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"))
}

const (
	tagPing  Tag = "Ping"
	tagData  Tag = "Data"
	tagEvent Tag = "Event"
)

// newTestSystem returns a started system that is shut down with the test.
func newTestSystem(t *testing.T) *ActorSystem {
	t.Helper()
	system, err := NewActorSystem("testSys", WithSystemLogger(log.DiscardLogger))
	if err != nil {
		t.Fatal(err)
	}
	if err := system.Start(context.TODO()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if system.Running() {
			_ = system.Stop(context.TODO())
		}
	})
	return system
}

// recorder captures the tags handled by an instance in arrival order.
type recorder struct {
	mu   sync.Mutex
	tags []Tag
}

func (r *recorder) handle(rctx *ReceiveContext) {
	r.mu.Lock()
	r.tags = append(r.tags, rctx.Message().Tag())
	r.mu.Unlock()
}

func (r *recorder) seen() []Tag {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Tag, len(r.tags))
	copy(out, r.tags)
	return out
}

// noop is a handler that accepts and discards everything.
func noop(*ReceiveContext) {}

// consumerDefinition builds a pure consumer over a single tag.
func consumerDefinition(name string, tag Tag, handler Handler) *Definition {
	if handler == nil {
		handler = noop
	}
	return NewDefinition(name).
		WithAlphabet(tag).
		WithHandler(tag, handler)
}
