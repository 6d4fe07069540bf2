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

package pipeline

import (
	"time"

	"github.com/actorsim/stampede/actor"
	"github.com/actorsim/stampede/log"
)

const (
	// TagData is the variant the source emits, 50 per second.
	TagData actor.Tag = "Data"
	// TagPing is the variant the stages and the sink accept.
	TagPing actor.Tag = "Ping"

	sourcePeriod = 20 * time.Millisecond
)

// SourceCallbacks is implemented to customize the source's behavior on each
// emitted variant.
type SourceCallbacks interface {
	// OnData runs before the data message is counted and forwarded.
	OnData()
}

type defaultSourceCallbacks struct {
	logger log.Logger
}

var _ SourceCallbacks = (*defaultSourceCallbacks)(nil)

func (c *defaultSourceCallbacks) OnData() {
	c.logger.Info("Source: Sending data message")
}

// NewSource builds the source definition. A nil callbacks falls back to the
// default logging implementation.
func NewSource(callbacks SourceCallbacks, logger log.Logger) *actor.Definition {
	if logger == nil {
		logger = log.DefaultLogger
	}
	if callbacks == nil {
		callbacks = &defaultSourceCallbacks{logger: logger}
	}
	return actor.NewDefinition("Source").
		WithAlphabet(TagData).
		WithHandler(TagData, func(rctx *actor.ReceiveContext) {
			callbacks.OnData()
			rctx.Produce(actor.NewMessage(TagData))
		}).
		WithTimer(actor.TimerSpec{Tag: TagData, Period: sourcePeriod, BatchSize: 1})
}
