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

// Package topologies groups the four simulation bundles shipped with the
// runtime: burst, pipeline, pubsub and loadbalanced. Each bundle declares
// its actors (alphabet, handlers, callbacks, timer) and a wired Topology
// connecting them.
//
// The callback surface follows the upstream bundle material: producing
// actors expose one On<Variant> method per emitted variant with a default
// implementation that logs a fixed line, pure consumers expose an empty
// callbacks interface. Note that the upstream material ships two competing
// copies of each default callback implementation (one inline in the actor
// file, one in a separate callbacks file); the bundles here keep a single
// copy per actor rather than merging the duplicates silently.
package topologies
