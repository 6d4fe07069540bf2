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
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReceiveContext(tag Tag) *ReceiveContext {
	return &ReceiveContext{
		ctx:     context.TODO(),
		message: NewMessage(tag),
	}
}

func TestUnboundedMailbox(t *testing.T) {
	t.Run("With FIFO ordering", func(t *testing.T) {
		mailbox := NewUnboundedMailbox()
		require.True(t, mailbox.IsEmpty())
		require.Nil(t, mailbox.Dequeue())

		for i := range 10 {
			require.NoError(t, mailbox.Enqueue(testReceiveContext(Tag(fmt.Sprintf("m%d", i)))))
		}
		require.EqualValues(t, 10, mailbox.Len())
		assert.False(t, mailbox.IsEmpty())

		for i := range 10 {
			received := mailbox.Dequeue()
			require.NotNil(t, received)
			assert.EqualValues(t, Tag(fmt.Sprintf("m%d", i)), received.Message().Tag())
		}
		assert.True(t, mailbox.IsEmpty())
	})
	t.Run("With concurrent producers", func(t *testing.T) {
		mailbox := NewUnboundedMailbox()
		producers := 8
		perProducer := 250

		var wg sync.WaitGroup
		wg.Add(producers)
		for range producers {
			go func() {
				defer wg.Done()
				for range perProducer {
					_ = mailbox.Enqueue(testReceiveContext(tagPing))
				}
			}()
		}
		wg.Wait()

		count := 0
		for mailbox.Dequeue() != nil {
			count++
		}
		assert.Equal(t, producers*perProducer, count)
	})
	t.Run("With dispose", func(t *testing.T) {
		mailbox := NewUnboundedMailbox()
		for range 5 {
			require.NoError(t, mailbox.Enqueue(testReceiveContext(tagPing)))
		}
		mailbox.Dispose()
		assert.True(t, mailbox.IsEmpty())
		assert.Zero(t, mailbox.Len())
	})
}

func TestBoundedMailbox(t *testing.T) {
	t.Run("With FIFO ordering", func(t *testing.T) {
		mailbox := NewBoundedMailbox(16)
		for i := range 10 {
			require.NoError(t, mailbox.Enqueue(testReceiveContext(Tag(fmt.Sprintf("m%d", i)))))
		}
		for i := range 10 {
			received := mailbox.Dequeue()
			require.NotNil(t, received)
			assert.EqualValues(t, Tag(fmt.Sprintf("m%d", i)), received.Message().Tag())
		}
	})
	t.Run("With capacity overflow", func(t *testing.T) {
		mailbox := NewBoundedMailbox(2)
		require.NoError(t, mailbox.Enqueue(testReceiveContext(tagPing)))
		require.NoError(t, mailbox.Enqueue(testReceiveContext(tagPing)))
		assert.ErrorIs(t, mailbox.Enqueue(testReceiveContext(tagPing)), ErrMailboxFull)
	})
	t.Run("With dispose", func(t *testing.T) {
		mailbox := NewBoundedMailbox(4)
		require.NoError(t, mailbox.Enqueue(testReceiveContext(tagPing)))
		mailbox.Dispose()
		assert.Nil(t, mailbox.Dequeue())
	})
}
