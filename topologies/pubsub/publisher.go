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

package pubsub

import (
	"time"

	"github.com/actorsim/stampede/actor"
	"github.com/actorsim/stampede/log"
)

const (
	// TagEvent is the variant the publisher emits, 10 per second.
	TagEvent actor.Tag = "Event"
	// TagPing is the variant the subscribers accept.
	TagPing actor.Tag = "Ping"

	publishPeriod = 100 * time.Millisecond
)

// PublisherCallbacks is implemented to customize the publisher's behavior
// on each emitted variant.
type PublisherCallbacks interface {
	// OnEvent runs before the event message is counted and broadcast.
	OnEvent()
}

type defaultPublisherCallbacks struct {
	logger log.Logger
}

var _ PublisherCallbacks = (*defaultPublisherCallbacks)(nil)

func (c *defaultPublisherCallbacks) OnEvent() {
	c.logger.Info("Publisher: Sending event message")
}

// NewPublisher builds the publisher definition. A nil callbacks falls back
// to the default logging implementation.
func NewPublisher(callbacks PublisherCallbacks, logger log.Logger) *actor.Definition {
	if logger == nil {
		logger = log.DefaultLogger
	}
	if callbacks == nil {
		callbacks = &defaultPublisherCallbacks{logger: logger}
	}
	return actor.NewDefinition("Publisher").
		WithAlphabet(TagEvent).
		WithHandler(TagEvent, func(rctx *actor.ReceiveContext) {
			callbacks.OnEvent()
			rctx.Produce(actor.NewMessage(TagEvent))
		}).
		WithTimer(actor.TimerSpec{Tag: TagEvent, Period: publishPeriod, BatchSize: 1})
}
