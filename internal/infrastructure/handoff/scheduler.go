package handoff

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Opener performs the actual handoff once the delay elapses, e.g. by
// instructing the client to open the deep link
type Opener interface {
	Open(link string) error
}

// OpenerFunc adapts a function to the Opener interface
type OpenerFunc func(link string) error

// Open calls f
func (f OpenerFunc) Open(link string) error { return f(link) }

// LogOpener records the handoff in the structured log. It is the
// default opener: the HTTP response already carries the link and delay,
// so the server side only needs a trace.
type LogOpener struct {
	logger *zap.Logger
}

// NewLogOpener creates an opener that logs each handoff
func NewLogOpener(logger *zap.Logger) *LogOpener {
	return &LogOpener{logger: logger}
}

// Open logs the handoff link
func (o *LogOpener) Open(link string) error {
	o.logger.Info("messaging handoff opened", zap.String("link", link))
	return nil
}

// Handoff is one scheduled deep-link open. Cancel stops it if the delay
// has not elapsed yet.
type Handoff struct {
	Link  string
	Delay time.Duration

	timer *time.Timer
	done  func()
}

// Cancel stops the handoff if it has not fired. It reports whether the
// open was prevented.
func (h *Handoff) Cancel() bool {
	stopped := h.timer.Stop()
	if stopped {
		h.done()
	}
	return stopped
}

// Scheduler delays the messaging handoff so the conversion reports get
// a head start before the customer leaves the page
type Scheduler struct {
	opener Opener
	delay  time.Duration
	logger *zap.Logger

	mu     sync.Mutex
	active map[*Handoff]struct{}
}

// NewScheduler creates a scheduler that opens handoffs after the given
// delay
func NewScheduler(opener Opener, delay time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		opener: opener,
		delay:  delay,
		logger: logger,
		active: make(map[*Handoff]struct{}),
	}
}

// Delay returns the configured handoff delay
func (s *Scheduler) Delay() time.Duration {
	return s.delay
}

// Schedule arms a delayed open of the given link and returns a handle
// that can cancel it
func (s *Scheduler) Schedule(link string) *Handoff {
	h := &Handoff{Link: link, Delay: s.delay}
	h.done = func() { s.remove(h) }
	h.timer = time.AfterFunc(s.delay, func() {
		defer s.remove(h)
		if err := s.opener.Open(link); err != nil {
			s.logger.Warn("messaging handoff failed", zap.Error(err))
		}
	})

	s.mu.Lock()
	s.active[h] = struct{}{}
	s.mu.Unlock()
	return h
}

// Shutdown cancels every handoff that has not fired yet
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	pending := make([]*Handoff, 0, len(s.active))
	for h := range s.active {
		pending = append(pending, h)
	}
	s.mu.Unlock()

	for _, h := range pending {
		h.Cancel()
	}
}

func (s *Scheduler) remove(h *Handoff) {
	s.mu.Lock()
	delete(s.active, h)
	s.mu.Unlock()
}
