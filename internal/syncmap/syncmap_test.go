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

package syncmap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMapBasic(t *testing.T) {
	sm := New[string, int]()
	sm.Set("a", 1)
	sm.Set("b", 2)

	val, ok := sm.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, val)

	_, ok = sm.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, 2, sm.Len())
	assert.ElementsMatch(t, []int{1, 2}, sm.Values())

	sm.Delete("a")
	_, ok = sm.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, sm.Len())

	sm.Reset()
	assert.Zero(t, sm.Len())
}

func TestSyncMapRange(t *testing.T) {
	sm := New[int, int]()
	for i := range 10 {
		sm.Set(i, i*i)
	}

	seen := 0
	sm.Range(func(int, int) bool {
		seen++
		return true
	})
	assert.Equal(t, 10, seen)

	seen = 0
	sm.Range(func(int, int) bool {
		seen++
		return false
	})
	assert.Equal(t, 1, seen)
}

func TestSyncMapConcurrent(t *testing.T) {
	sm := New[int, int]()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := range 100 {
				sm.Set(base*100+j, j)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 800, sm.Len())
}
