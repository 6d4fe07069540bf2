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
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actorsim/stampede/actor"
	"github.com/actorsim/stampede/log"
)

type countingCallbacks struct {
	batches atomic.Int64
}

func (c *countingCallbacks) OnBatch() {
	c.batches.Add(1)
}

func TestBurstTopology(t *testing.T) {
	system, err := actor.NewActorSystem("burstSys", actor.WithSystemLogger(log.DiscardLogger))
	require.NoError(t, err)
	require.NoError(t, system.Start(context.TODO()))
	defer func() { _ = system.Stop(context.TODO()) }()

	topology := Topology(log.DiscardLogger)
	require.NoError(t, topology.Validate())

	pids, err := system.SpawnTopology(context.TODO(), topology)
	require.NoError(t, err)
	require.Len(t, pids, 2)

	generator, err := system.Actor("BurstGenerator")
	require.NoError(t, err)
	processor, err := system.Actor("Processor")
	require.NoError(t, err)

	// 10 per second with no drops: over a bit more than 3 seconds the
	// generator must land between 20 and 40 handled batches
	time.Sleep(3100 * time.Millisecond)
	count := generator.DispatchCount()
	assert.GreaterOrEqual(t, count, int64(20))
	assert.LessOrEqual(t, count, int64(40))

	// the wired edge carries every handled batch to the processor
	require.Eventually(t, func() bool {
		return processor.DispatchCount() >= 20
	}, 2*time.Second, 20*time.Millisecond)
}

func TestBurstCustomCallbacks(t *testing.T) {
	system, err := actor.NewActorSystem("burstSys", actor.WithSystemLogger(log.DiscardLogger))
	require.NoError(t, err)
	require.NoError(t, system.Start(context.TODO()))
	defer func() { _ = system.Stop(context.TODO()) }()

	callbacks := new(countingCallbacks)
	pid, err := system.Spawn(context.TODO(), NewBurstGenerator(callbacks, log.DiscardLogger))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return callbacks.batches.Load() >= 10
	}, 3*time.Second, 20*time.Millisecond)
	// the callback runs once per handled message, before the count
	assert.GreaterOrEqual(t, callbacks.batches.Load(), pid.DispatchCount())
}

func TestBurstUnwiredGeneratorDropsOutput(t *testing.T) {
	system, err := actor.NewActorSystem("burstSys", actor.WithSystemLogger(log.DiscardLogger))
	require.NoError(t, err)
	require.NoError(t, system.Start(context.TODO()))
	defer func() { _ = system.Stop(context.TODO()) }()

	generator, err := system.Spawn(context.TODO(), NewBurstGenerator(nil, log.DiscardLogger))
	require.NoError(t, err)
	processor, err := system.Spawn(context.TODO(), NewProcessor(nil, log.DiscardLogger))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return generator.DispatchCount() >= 10
	}, 3*time.Second, 20*time.Millisecond)
	assert.Zero(t, processor.DispatchCount())
}
