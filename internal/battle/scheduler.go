package battle

import (
	"sync"
	"time"
)

// Token identifies a scheduled callback so it can be cancelled. The
// zero Token is never issued and is safe to cancel.
type Token uint64

// Scheduler is the single timer abstraction the engine depends on.
// It is injected so tests can drive time manually; production code
// uses TimerScheduler.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Token
	Cancel(tok Token)
}

// TimerScheduler is the wall-clock Scheduler backed by time.AfterFunc.
type TimerScheduler struct {
	mu     sync.Mutex
	next   Token
	timers map[Token]*time.Timer
}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{timers: make(map[Token]*time.Timer)}
}

func (s *TimerScheduler) Schedule(delay time.Duration, fn func()) Token {
	s.mu.Lock()
	s.next++
	tok := s.next
	s.timers[tok] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, tok)
		s.mu.Unlock()
		fn()
	})
	s.mu.Unlock()
	return tok
}

// Cancel stops a pending callback. Cancelling a token that already
// fired or was never issued is a no-op.
func (s *TimerScheduler) Cancel(tok Token) {
	s.mu.Lock()
	if t, ok := s.timers[tok]; ok {
		t.Stop()
		delete(s.timers, tok)
	}
	s.mu.Unlock()
}
