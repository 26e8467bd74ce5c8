/*
   Copyright 2026 Joseph Cumines

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package behaviortree

import (
	"context"
	"errors"
	"sync"
	"time"
)

type (
	// Ticker models a runner driving a single BT on a fixed period. It is
	// deliberately non-generic - the bound action and blackboard types are
	// erased into the tick closure at construction, the same way BT erases
	// the blackboard for State - so that a Manager can aggregate Tickers for
	// unrelated trees.
	Ticker interface {
		// Done closes once the ticker has fully stopped.
		Done() <-chan struct{}
		// Err returns any error that stopped the ticker.
		Err() error
		// Stop shuts the ticker down asynchronously.
		Stop()
	}

	// tickerCore is the shared implementation behind NewTicker and
	// NewTickerStopOnFailure.
	tickerCore struct {
		ctx    context.Context
		cancel context.CancelFunc
		tick   func(dt time.Duration) (Status, error)
		ticker *time.Ticker
		period time.Duration
		done   chan struct{}
		stop   chan struct{}
		once   sync.Once
		mutex  sync.Mutex
		err    error
	}

	// tickerStopOnFailure wraps a Ticker built with a tick func that maps
	// Failure to errExitOnFailure, and hides that sentinel from Err.
	tickerStopOnFailure struct {
		Ticker
	}
)

// errExitOnFailure is used internally by NewTickerStopOnFailure to exit the
// run loop on the tree's first Failure; it is never surfaced by Err.
var errExitOnFailure = errors.New("errExitOnFailure")

// NewTicker constructs a Ticker that calls
// bt.Tick(FromDuration(duration), dispatch) once per period, until the
// first error, a call to Stop, or ctx is canceled. Panics if ctx is nil,
// duration <= 0, or bt is nil.
func NewTicker[A any, BB any](ctx context.Context, duration time.Duration, bt *BT[A, BB], dispatch Dispatcher[A, BB]) Ticker {
	if bt == nil {
		panic(errors.New("behaviortree.NewTicker nil bt"))
	}
	return newTickerCore(ctx, duration, func(dt time.Duration) (Status, error) {
		status, _, _ := bt.Tick(FromDuration(dt), dispatch)
		return status, nil
	})
}

// NewTickerStopOnFailure is like NewTicker, but also exits (without
// reporting an error via Err) the first time bt.Tick reports Failure.
// Panics under the same conditions as NewTicker.
func NewTickerStopOnFailure[A any, BB any](ctx context.Context, duration time.Duration, bt *BT[A, BB], dispatch Dispatcher[A, BB]) Ticker {
	if bt == nil {
		panic(errors.New("behaviortree.NewTickerStopOnFailure nil bt"))
	}
	return tickerStopOnFailure{Ticker: newTickerCore(ctx, duration, func(dt time.Duration) (Status, error) {
		status, _, _ := bt.Tick(FromDuration(dt), dispatch)
		var err error
		if status == Failure {
			err = errExitOnFailure
		}
		return status, err
	})}
}

func newTickerCore(ctx context.Context, duration time.Duration, tick func(dt time.Duration) (Status, error)) Ticker {
	if ctx == nil {
		panic(errors.New("behaviortree.NewTicker nil context"))
	}
	if duration <= 0 {
		panic(errors.New("behaviortree.NewTicker duration <= 0"))
	}

	result := &tickerCore{
		tick:   tick,
		ticker: time.NewTicker(duration),
		period: duration,
		done:   make(chan struct{}),
		stop:   make(chan struct{}),
	}

	result.ctx, result.cancel = context.WithCancel(ctx)

	go result.run()

	return result
}

func (t *tickerCore) run() {
	var err error
TickLoop:
	for err == nil {
		select {
		case <-t.ctx.Done():
			err = t.ctx.Err()
			break TickLoop
		case <-t.stop:
			break TickLoop
		case <-t.ticker.C:
			_, err = t.tick(t.period)
		}
	}
	t.mutex.Lock()
	t.err = err
	t.mutex.Unlock()
	t.Stop()
	t.cancel()
	close(t.done)
}

func (t *tickerCore) Done() <-chan struct{} {
	return t.done
}

func (t *tickerCore) Err() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.err
}

func (t *tickerCore) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.stop)
	})
}

func (t tickerStopOnFailure) Err() error {
	err := t.Ticker.Err()
	if err == errExitOnFailure {
		return nil
	}
	return err
}
