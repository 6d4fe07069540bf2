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

package loadbalanced

import (
	"time"

	"github.com/actorsim/stampede/actor"
	"github.com/actorsim/stampede/log"
)

const (
	// TagRequest is the variant the balancer emits, 100 per second.
	TagRequest actor.Tag = "Request"
	// TagPing is the variant the servers and the database accept.
	TagPing actor.Tag = "Ping"

	balancePeriod = 10 * time.Millisecond
)

// LoadBalancerCallbacks is implemented to customize the balancer's behavior
// on each emitted variant.
type LoadBalancerCallbacks interface {
	// OnRequest runs before the request message is counted and dispatched
	// to the next server.
	OnRequest()
}

type defaultLoadBalancerCallbacks struct {
	logger log.Logger
}

var _ LoadBalancerCallbacks = (*defaultLoadBalancerCallbacks)(nil)

func (c *defaultLoadBalancerCallbacks) OnRequest() {
	c.logger.Info("LoadBalancer: Sending request message")
}

// NewLoadBalancer builds the balancer definition. A nil callbacks falls
// back to the default logging implementation.
func NewLoadBalancer(callbacks LoadBalancerCallbacks, logger log.Logger) *actor.Definition {
	if logger == nil {
		logger = log.DefaultLogger
	}
	if callbacks == nil {
		callbacks = &defaultLoadBalancerCallbacks{logger: logger}
	}
	return actor.NewDefinition("LoadBalancer").
		WithAlphabet(TagRequest).
		WithHandler(TagRequest, func(rctx *actor.ReceiveContext) {
			callbacks.OnRequest()
			rctx.Produce(actor.NewMessage(TagRequest))
		}).
		WithTimer(actor.TimerSpec{Tag: TagRequest, Period: balancePeriod, BatchSize: 1})
}
