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
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actorsim/stampede/log"
)

func TestActorSystemNew(t *testing.T) {
	t.Run("With valid name", func(t *testing.T) {
		system, err := NewActorSystem("stampede-1")
		require.NoError(t, err)
		require.NotNil(t, system)
		assert.Equal(t, "stampede-1", system.Name())
		assert.NotNil(t, system.Logger())
	})
	t.Run("With invalid name", func(t *testing.T) {
		system, err := NewActorSystem("$omeN@me")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidActorSystemName)
		assert.Nil(t, system)
	})
	t.Run("With empty name", func(t *testing.T) {
		_, err := NewActorSystem("")
		assert.ErrorIs(t, err, ErrInvalidActorSystemName)
	})
}

func TestActorSystemLifecycle(t *testing.T) {
	t.Run("With double start", func(t *testing.T) {
		system, err := NewActorSystem("testSys", WithSystemLogger(log.DiscardLogger))
		require.NoError(t, err)
		require.NoError(t, system.Start(context.TODO()))
		assert.ErrorIs(t, system.Start(context.TODO()), ErrActorSystemAlreadyStarted)
		require.NoError(t, system.Stop(context.TODO()))
	})
	t.Run("With stop before start", func(t *testing.T) {
		system, err := NewActorSystem("testSys", WithSystemLogger(log.DiscardLogger))
		require.NoError(t, err)
		assert.ErrorIs(t, system.Stop(context.TODO()), ErrActorSystemNotStarted)
	})
	t.Run("With spawn before start", func(t *testing.T) {
		system, err := NewActorSystem("testSys", WithSystemLogger(log.DiscardLogger))
		require.NoError(t, err)
		_, err = system.Spawn(context.TODO(), consumerDefinition("Sink", tagPing, nil))
		assert.ErrorIs(t, err, ErrActorSystemNotStarted)
	})
	t.Run("With stop terminating every instance", func(t *testing.T) {
		system := newTestSystem(t)
		names := []string{"Sink1", "Sink2", "Sink3"}
		pids := make([]*PID, 0, len(names))
		for _, name := range names {
			pid, err := system.Spawn(context.TODO(), consumerDefinition(name, tagPing, nil))
			require.NoError(t, err)
			pids = append(pids, pid)
		}
		require.Len(t, system.Actors(), 3)

		require.NoError(t, system.Stop(context.TODO()))
		for _, pid := range pids {
			select {
			case <-pid.Done():
			case <-time.After(time.Second):
				t.Fatalf("actor=(%s) did not stop", pid.Name())
			}
			assert.Equal(t, Stopped, pid.Status())
		}
		assert.Empty(t, system.Actors())
		assert.False(t, system.Running())
	})
}

func TestActorSystemSpawn(t *testing.T) {
	t.Run("With nil definition", func(t *testing.T) {
		system := newTestSystem(t)
		_, err := system.Spawn(context.TODO(), nil)
		require.Error(t, err)
	})
	t.Run("With invalid definition", func(t *testing.T) {
		system := newTestSystem(t)
		_, err := system.Spawn(context.TODO(), NewDefinition("Sink"))
		assert.ErrorIs(t, err, ErrEmptyAlphabet)
	})
	t.Run("With duplicate actor name", func(t *testing.T) {
		system := newTestSystem(t)
		_, err := system.Spawn(context.TODO(), consumerDefinition("Sink", tagPing, nil))
		require.NoError(t, err)
		_, err = system.Spawn(context.TODO(), consumerDefinition("Sink", tagPing, nil))
		assert.ErrorIs(t, err, ErrActorAlreadyExists)
	})
	t.Run("With name reusable after stop", func(t *testing.T) {
		system := newTestSystem(t)
		pid, err := system.Spawn(context.TODO(), consumerDefinition("Sink", tagPing, nil))
		require.NoError(t, err)
		require.NoError(t, pid.Stop(context.TODO()))

		respawned, err := system.Spawn(context.TODO(), consumerDefinition("Sink", tagPing, nil))
		require.NoError(t, err)
		assert.False(t, pid.Equals(respawned))
	})
}

func TestActorSystemLookup(t *testing.T) {
	system := newTestSystem(t)
	pid, err := system.Spawn(context.TODO(), consumerDefinition("Sink", tagPing, nil))
	require.NoError(t, err)

	found, err := system.Actor("Sink")
	require.NoError(t, err)
	assert.True(t, pid.Equals(found))

	_, err = system.Actor("Unknown")
	assert.ErrorIs(t, err, ErrDead)
}

func TestActorSystemKill(t *testing.T) {
	system := newTestSystem(t)
	pid, err := system.Spawn(context.TODO(), consumerDefinition("Sink", tagPing, nil))
	require.NoError(t, err)

	require.NoError(t, system.Kill(context.TODO(), "Sink"))
	<-pid.Done()
	assert.ErrorIs(t, system.Kill(context.TODO(), "Sink"), ErrDead)
}
