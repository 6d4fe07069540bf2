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

package burst

import (
	"time"

	"github.com/actorsim/stampede/actor"
	"github.com/actorsim/stampede/log"
)

const (
	// TagBatch is the variant the generator emits to itself and downstream.
	TagBatch actor.Tag = "Batch"

	// the generator fires 10 messages every second
	burstPeriod = time.Second
	burstSize   = 10
)

// BurstGeneratorCallbacks is implemented to customize the generator's
// behavior on each emitted variant.
type BurstGeneratorCallbacks interface {
	// OnBatch runs before the batch message is counted and forwarded.
	OnBatch()
}

// defaultBurstGeneratorCallbacks logs each batch emission.
type defaultBurstGeneratorCallbacks struct {
	logger log.Logger
}

var _ BurstGeneratorCallbacks = (*defaultBurstGeneratorCallbacks)(nil)

func (c *defaultBurstGeneratorCallbacks) OnBatch() {
	c.logger.Info("BurstGenerator: Sending batch message")
}

// NewBurstGenerator builds the burst generator definition. A nil callbacks
// falls back to the default logging implementation.
func NewBurstGenerator(callbacks BurstGeneratorCallbacks, logger log.Logger) *actor.Definition {
	if logger == nil {
		logger = log.DefaultLogger
	}
	if callbacks == nil {
		callbacks = &defaultBurstGeneratorCallbacks{logger: logger}
	}
	return actor.NewDefinition("BurstGenerator").
		WithAlphabet(TagBatch).
		WithHandler(TagBatch, func(rctx *actor.ReceiveContext) {
			callbacks.OnBatch()
			rctx.Produce(actor.NewMessage(TagBatch))
		}).
		WithTimer(actor.TimerSpec{Tag: TagBatch, Period: burstPeriod, BatchSize: burstSize})
}
