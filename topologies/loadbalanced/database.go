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

package loadbalanced

import (
	"github.com/actorsim/stampede/actor"
	"github.com/actorsim/stampede/log"
)

// DatabaseCallbacks is the database's customization surface. The database
// emits nothing, so the interface is empty.
type DatabaseCallbacks interface{}

// NewDatabase builds the database definition, the terminal consumer of the
// bundle.
func NewDatabase(_ DatabaseCallbacks, logger log.Logger) *actor.Definition {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return actor.NewDefinition("Database").
		WithAlphabet(TagPing).
		WithHandler(TagPing, func(rctx *actor.ReceiveContext) {
			logger.Debugf("Database: handled %s", rctx.Message().Tag())
		})
}
