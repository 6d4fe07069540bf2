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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitionValidate(t *testing.T) {
	t.Run("With valid definition", func(t *testing.T) {
		definition := NewDefinition("Processor").
			WithAlphabet(tagPing, tagData).
			WithHandler(tagPing, noop).
			WithHandler(tagData, noop)
		assert.NoError(t, definition.Validate())
	})
	t.Run("With missing name", func(t *testing.T) {
		definition := NewDefinition("").
			WithAlphabet(tagPing).
			WithHandler(tagPing, noop)
		assert.ErrorIs(t, definition.Validate(), ErrNameRequired)
	})
	t.Run("With empty alphabet", func(t *testing.T) {
		definition := NewDefinition("Processor")
		assert.ErrorIs(t, definition.Validate(), ErrEmptyAlphabet)
	})
	t.Run("With declared tag lacking a handler", func(t *testing.T) {
		definition := NewDefinition("Processor").
			WithAlphabet(tagPing, tagData).
			WithHandler(tagPing, noop)
		assert.ErrorIs(t, definition.Validate(), ErrMissingHandler)
	})
	t.Run("With handler for undeclared tag", func(t *testing.T) {
		definition := NewDefinition("Processor").
			WithAlphabet(tagPing).
			WithHandler(tagPing, noop).
			WithHandler(tagData, noop)
		assert.ErrorIs(t, definition.Validate(), ErrUndeclaredTag)
	})
	t.Run("With timer tag outside the alphabet", func(t *testing.T) {
		definition := NewDefinition("Source").
			WithAlphabet(tagPing).
			WithHandler(tagPing, noop).
			WithTimer(TimerSpec{Tag: tagData, Period: time.Second, BatchSize: 1})
		assert.ErrorIs(t, definition.Validate(), ErrUndeclaredTag)
	})
}

func TestTimerSpecValidate(t *testing.T) {
	t.Run("With valid spec", func(t *testing.T) {
		spec := TimerSpec{Tag: tagData, Period: 20 * time.Millisecond, BatchSize: 1}
		assert.NoError(t, spec.Validate())
	})
	t.Run("With non-positive period", func(t *testing.T) {
		spec := TimerSpec{Tag: tagData, Period: 0, BatchSize: 1}
		assert.ErrorIs(t, spec.Validate(), ErrInvalidTimerSpec)
	})
	t.Run("With non-positive batch size", func(t *testing.T) {
		spec := TimerSpec{Tag: tagData, Period: time.Second, BatchSize: 0}
		assert.ErrorIs(t, spec.Validate(), ErrInvalidTimerSpec)
	})
	t.Run("With empty tag", func(t *testing.T) {
		spec := TimerSpec{Period: time.Second, BatchSize: 1}
		assert.ErrorIs(t, spec.Validate(), ErrInvalidTimerSpec)
	})
}

func TestDefinitionAccessors(t *testing.T) {
	spec := TimerSpec{Tag: tagData, Period: time.Second, BatchSize: 10}
	definition := NewDefinition("Source").
		WithAlphabet(tagData).
		WithHandler(tagData, noop).
		WithTimer(spec)

	require.Equal(t, "Source", definition.Name())
	require.True(t, definition.Alphabet().Contains(tagData))

	actual, ok := definition.TimerSpec()
	require.True(t, ok)
	assert.Equal(t, spec, actual)

	_, ok = consumerDefinition("Sink", tagPing, nil).TimerSpec()
	assert.False(t, ok)
}
