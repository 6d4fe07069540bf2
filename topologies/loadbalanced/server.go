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

// ServerCallbacks is the servers' customization surface. Servers only relay
// to the database, so the interface is empty.
type ServerCallbacks interface{}

// NewServer builds one backend server. Servers accept Ping and forward the
// handled work to the database.
func NewServer(name string, _ ServerCallbacks, logger log.Logger) *actor.Definition {
	if logger == nil {
		logger = log.DefaultLogger
	}
	return actor.NewDefinition(name).
		WithAlphabet(TagPing).
		WithHandler(TagPing, func(rctx *actor.ReceiveContext) {
			logger.Debugf("%s: handled %s", name, rctx.Message().Tag())
			rctx.Produce(actor.NewMessage(TagPing))
		})
}
