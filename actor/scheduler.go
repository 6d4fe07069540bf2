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
	"sync"

	"github.com/google/uuid"
	"github.com/reugn/go-quartz/job"
	quartzlogger "github.com/reugn/go-quartz/logger"
	"github.com/reugn/go-quartz/quartz"
	"go.uber.org/atomic"

	"github.com/actorsim/stampede/internal/syncmap"
	"github.com/actorsim/stampede/log"
)

// scheduler drives the timer-declared producers. Each instance whose
// definition carries a TimerSpec gets one recurring job that injects the
// configured batch of self-addressed messages every period.
type scheduler struct {
	mu sync.Mutex
	// underlying quartz scheduler
	quartzScheduler quartz.Scheduler
	// states whether the quartzScheduler has started or not
	started *atomic.Bool
	// tracks the job key of each timed instance so that a stop can cancel
	// exactly its own timer
	jobKeys *syncmap.SyncMap[string, *quartz.JobKey]
	logger  log.Logger
}

// newScheduler creates an instance of scheduler
func newScheduler(logger log.Logger) *scheduler {
	// create an instance of quartz scheduler with logger off
	quartzScheduler, _ := quartz.NewStdScheduler(quartz.WithLogger(quartzlogger.NewSimpleLogger(nil, quartzlogger.LevelOff)))
	return &scheduler{
		quartzScheduler: quartzScheduler,
		started:         atomic.NewBool(false),
		jobKeys:         syncmap.New[string, *quartz.JobKey](),
		logger:          logger,
	}
}

// Start starts the scheduler
func (x *scheduler) Start(ctx context.Context) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.quartzScheduler.Start(ctx)
	x.started.Store(x.quartzScheduler.IsStarted())
}

// Stop stops the scheduler and waits for in-flight jobs within the bound of
// the given context.
func (x *scheduler) Stop(ctx context.Context) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.jobKeys.Reset()
	_ = x.quartzScheduler.Clear()
	x.quartzScheduler.Stop()
	x.started.Store(x.quartzScheduler.IsStarted())
	ctx, cancel := context.WithTimeout(ctx, DefaultSchedulerShutdownTimeout)
	defer cancel()
	x.quartzScheduler.Wait(ctx)
}

// scheduleTimer registers the recurring producer job of the given instance.
// Every period the job enqueues BatchSize self-addressed messages carrying
// the spec's tag; the instance handles them through the normal dispatch
// path, which is how the producing variants keep their callbacks, counter
// and forwarding in one place.
func (x *scheduler) scheduleTimer(pid *PID, spec TimerSpec) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if !x.started.Load() {
		return ErrSchedulerNotStarted
	}

	timerJob := job.NewFunctionJob[bool](
		func(ctx context.Context) (bool, error) {
			for range spec.BatchSize {
				if err := pid.deliver(ctx, NoSender, NewMessage(spec.Tag)); err != nil {
					return false, err
				}
			}
			return true, nil
		})

	key := quartz.NewJobKey(uuid.NewString())
	detail := quartz.NewJobDetail(timerJob, key)
	if err := x.quartzScheduler.ScheduleJob(detail, quartz.NewSimpleTrigger(spec.Period)); err != nil {
		return err
	}
	x.jobKeys.Set(pid.ID(), key)
	return nil
}

// cancelTimer removes the producer job of the given instance, if any. Once
// the call returns no further self-injections occur for that instance.
func (x *scheduler) cancelTimer(pid *PID) {
	x.mu.Lock()
	defer x.mu.Unlock()
	key, ok := x.jobKeys.Get(pid.ID())
	if !ok {
		return
	}
	x.jobKeys.Delete(pid.ID())
	if err := x.quartzScheduler.DeleteJob(key); err != nil {
		x.logger.Debugf("failed to delete timer job of actor=(%s): %v", pid.Name(), err)
	}
}
