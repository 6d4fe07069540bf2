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

// Package pipeline is the linear bundle: a timed source feeding three
// relay stages and a terminal sink.
package pipeline

import (
	"github.com/actorsim/stampede/actor"
	"github.com/actorsim/stampede/log"
)

// Topology wires Source -> Stage1 -> Stage2 -> Stage3 -> Sink. The Data
// variant the source emits crosses the first edge as a Ping; the stages
// relay it unchanged.
func Topology(logger log.Logger) *actor.Topology {
	return actor.NewTopology("pipeline",
		[]*actor.Definition{
			NewSource(nil, logger),
			NewStage("Stage1", nil, logger),
			NewStage("Stage2", nil, logger),
			NewStage("Stage3", nil, logger),
			NewSink(nil, logger),
		},
		[]actor.Edge{
			{From: "Source", To: []string{"Stage1"}, Strategy: actor.PointToPointRouting, DeliverAs: TagPing},
			{From: "Stage1", To: []string{"Stage2"}, Strategy: actor.PointToPointRouting},
			{From: "Stage2", To: []string{"Stage3"}, Strategy: actor.PointToPointRouting},
			{From: "Stage3", To: []string{"Sink"}, Strategy: actor.PointToPointRouting},
		})
}
