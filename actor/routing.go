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
	"math/rand/v2"
	"sync/atomic"
)

// RoutingStrategy defines how an outbound topology edge selects the
// recipient(s) of a produced message.
//
// Available strategies:
//   - PointToPointRouting:
//     Delivers every message to the edge's single target. This is the
//     pipeline shape: each stage holds a handle to the next stage.
//   - FanOutRouting:
//     Delivers every message to all targets. This is the pub-sub shape: the
//     publisher holds a handle per subscriber.
//   - RoundRobinRouting:
//     Delivers each message to the next target in sequence, cycling back to
//     the first after the last. This is the load-balanced shape with an even
//     selection policy.
//   - RandomRouting:
//     Delivers each message to a target chosen uniformly at random. This is
//     the load-balanced shape when uneven load patterns are acceptable.
type RoutingStrategy int

const (
	// PointToPointRouting sends each message to the edge's only target.
	PointToPointRouting RoutingStrategy = iota
	// FanOutRouting broadcasts every message to all targets.
	FanOutRouting
	// RoundRobinRouting sends each message to the next target in order,
	// cycling back to the first after the last.
	RoundRobinRouting
	// RandomRouting selects a target uniformly at random for each message.
	RandomRouting
)

// String implements fmt.Stringer.
func (s RoutingStrategy) String() string {
	switch s {
	case PointToPointRouting:
		return "PointToPoint"
	case FanOutRouting:
		return "FanOut"
	case RoundRobinRouting:
		return "RoundRobin"
	case RandomRouting:
		return "Random"
	default:
		return "Unknown"
	}
}

// route is the resolved outbound edge installed on an instance before it
// starts. It owns the recipient selection for every message the instance
// produces.
type route struct {
	strategy  RoutingStrategy
	targets   []*PID
	deliverAs Tag
	next      uint32
}

// newRoute creates a resolved outbound route. deliverAs optionally rewrites
// the produced message tag into the variant the targets declare; the empty
// tag leaves messages untouched.
func newRoute(strategy RoutingStrategy, deliverAs Tag, targets ...*PID) *route {
	return &route{
		strategy:  strategy,
		targets:   targets,
		deliverAs: deliverAs,
	}
}

// recipients selects the pid(s) the next produced message goes to.
func (r *route) recipients() []*PID {
	if len(r.targets) == 0 {
		return nil
	}
	switch r.strategy {
	case FanOutRouting:
		return r.targets
	case RoundRobinRouting:
		n := atomic.AddUint32(&r.next, 1)
		i := int((n - 1) % uint32(len(r.targets)))
		return []*PID{r.targets[i]}
	case RandomRouting:
		return []*PID{r.targets[rand.IntN(len(r.targets))]}
	default:
		return r.targets[:1]
	}
}

// translate rewrites the produced message into the variant the edge
// delivers, when the edge declares one.
func (r *route) translate(message Message) Message {
	if r.deliverAs == "" || r.deliverAs == message.Tag() {
		return message
	}
	return NewMessage(r.deliverAs)
}
