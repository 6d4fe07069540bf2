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
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actorsim/stampede/actor"
	"github.com/actorsim/stampede/log"
)

func TestPipelineTopology(t *testing.T) {
	system, err := actor.NewActorSystem("pipelineSys", actor.WithSystemLogger(log.DiscardLogger))
	require.NoError(t, err)
	require.NoError(t, system.Start(context.TODO()))
	defer func() { _ = system.Stop(context.TODO()) }()

	topology := Topology(log.DiscardLogger)
	require.NoError(t, topology.Validate())

	pids, err := system.SpawnTopology(context.TODO(), topology)
	require.NoError(t, err)
	require.Len(t, pids, 5)

	sink, err := system.Actor("Sink")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return sink.DispatchCount() >= 20
	}, 3*time.Second, 10*time.Millisecond)

	// progress can only shrink along the line
	names := []string{"Source", "Stage1", "Stage2", "Stage3", "Sink"}
	counts := make([]int64, len(names))
	for i, name := range names {
		pid, err := system.Actor(name)
		require.NoError(t, err)
		counts[i] = pid.DispatchCount()
	}
	for i := 1; i < len(counts); i++ {
		assert.GreaterOrEqual(t, counts[i-1], counts[i],
			"%s should not lag behind %s", names[i-1], names[i])
	}
}

func TestPipelineUnwiredKeepsDownstreamIdle(t *testing.T) {
	system, err := actor.NewActorSystem("pipelineSys", actor.WithSystemLogger(log.DiscardLogger))
	require.NoError(t, err)
	require.NoError(t, system.Start(context.TODO()))
	defer func() { _ = system.Stop(context.TODO()) }()

	source, err := system.Spawn(context.TODO(), NewSource(nil, log.DiscardLogger))
	require.NoError(t, err)
	sink, err := system.Spawn(context.TODO(), NewSink(nil, log.DiscardLogger))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return source.DispatchCount() >= 10
	}, 3*time.Second, 10*time.Millisecond)
	assert.Zero(t, sink.DispatchCount())
}
