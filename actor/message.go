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

// Tag identifies a message variant within an actor's declared alphabet.
type Tag string

// String implements fmt.Stringer.
func (t Tag) String() string {
	return string(t)
}

// Message is an immutable tagged value drawn from an actor's declared
// alphabet.
//
// The generated bundles only ever carry the tag itself; payload-bearing
// variants implement Message with additional accessors of their own. A
// Message must be safe to share between goroutines, which in practice means
// it must not be mutated after construction.
type Message interface {
	// Tag returns the message variant tag.
	Tag() Tag
}

// tagMessage is the payload-free message the generated bundles exchange.
type tagMessage struct {
	tag Tag
}

// enforce compilation error
var _ Message = tagMessage{}

// NewMessage creates a tag-only Message for the given variant.
func NewMessage(tag Tag) Message {
	return tagMessage{tag: tag}
}

// Tag returns the message variant tag.
func (m tagMessage) Tag() Tag {
	return m.tag
}
