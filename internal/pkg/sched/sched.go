// Package sched provides a single ticking clock source that fans out
// to consumers with different cadences. The live view re-derives
// statuses on a fast tick and refetches backend data on a slow one;
// both hang off the same source instead of owning private timers.
package sched

import (
	"sync"
	"time"

	"agenda-espacos/internal/pkg/clock"
)

type subscription struct {
	every time.Duration
	last  time.Time
	ch    chan time.Time
}

// Source dispatches wall-clock ticks to subscribers. Sends never
// block: a consumer that is still busy simply misses a tick and
// catches up on the next one, which is the right behavior for
// recompute work.
type Source struct {
	clk        clock.Clock
	resolution time.Duration

	mu   sync.Mutex
	subs map[*subscription]struct{}
	stop chan struct{}
}

// NewSource creates a source ticking at the given base resolution.
// Subscriber intervals below the resolution are served at the
// resolution.
func NewSource(clk clock.Clock, resolution time.Duration) *Source {
	if resolution <= 0 {
		resolution = time.Second
	}
	return &Source{
		clk:        clk,
		resolution: resolution,
		subs:       make(map[*subscription]struct{}),
	}
}

// Subscribe registers a consumer that wants a tick at most once per
// interval. The returned cancel func unregisters and closes the
// channel; it is safe to call more than once.
func (s *Source) Subscribe(every time.Duration) (<-chan time.Time, func()) {
	sub := &subscription{
		every: every,
		ch:    make(chan time.Time, 1),
	}

	s.mu.Lock()
	s.subs[sub] = struct{}{}
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, sub)
			s.mu.Unlock()
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Start launches the tick loop. Stop terminates it; subscriptions
// survive a restart.
func (s *Source) Start() {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	s.stop = stop
	s.mu.Unlock()

	go func() {
		ticker := time.NewTicker(s.resolution)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.Dispatch(s.clk.Now())
			}
		}
	}()
}

func (s *Source) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

// Dispatch delivers now to every subscriber whose interval has
// elapsed. Exposed so tests (and the run loop) can drive ticks
// explicitly.
func (s *Source) Dispatch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sub := range s.subs {
		if !sub.last.IsZero() && now.Sub(sub.last) < sub.every {
			continue
		}
		select {
		case sub.ch <- now:
			sub.last = now
		default:
			// Consumer busy; it will get the next eligible tick.
		}
	}
}
