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

// Package pubsub is the broadcast bundle: a timed publisher fanning every
// event out to three subscribers.
package pubsub

import (
	"github.com/actorsim/stampede/actor"
	"github.com/actorsim/stampede/log"
)

// Topology wires Publisher -> {Subscriber1, Subscriber2, Subscriber3} with
// fan-out delivery. Each Event reaches all three subscribers as a Ping.
func Topology(logger log.Logger) *actor.Topology {
	return actor.NewTopology("pubsub",
		[]*actor.Definition{
			NewPublisher(nil, logger),
			NewSubscriber("Subscriber1", nil, logger),
			NewSubscriber("Subscriber2", nil, logger),
			NewSubscriber("Subscriber3", nil, logger),
		},
		[]actor.Edge{{
			From:      "Publisher",
			To:        []string{"Subscriber1", "Subscriber2", "Subscriber3"},
			Strategy:  actor.FanOutRouting,
			DeliverAs: TagPing,
		}})
}
