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

// Package loadbalanced is the load-balancing bundle: a timed balancer
// spreading requests round-robin over three servers that all write to one
// database.
package loadbalanced

import (
	"github.com/actorsim/stampede/actor"
	"github.com/actorsim/stampede/log"
)

// Topology wires LoadBalancer -> {Server1, Server2, Server3} -> Database.
// Requests reach the servers as Pings, one server per request in rotation;
// each server forwards its handled work to the database.
func Topology(logger log.Logger) *actor.Topology {
	return actor.NewTopology("loadbalanced",
		[]*actor.Definition{
			NewLoadBalancer(nil, logger),
			NewServer("Server1", nil, logger),
			NewServer("Server2", nil, logger),
			NewServer("Server3", nil, logger),
			NewDatabase(nil, logger),
		},
		[]actor.Edge{
			{
				From:      "LoadBalancer",
				To:        []string{"Server1", "Server2", "Server3"},
				Strategy:  actor.RoundRobinRouting,
				DeliverAs: TagPing,
			},
			{From: "Server1", To: []string{"Database"}, Strategy: actor.PointToPointRouting},
			{From: "Server2", To: []string{"Database"}, Strategy: actor.PointToPointRouting},
			{From: "Server3", To: []string{"Database"}, Strategy: actor.PointToPointRouting},
		})
}
