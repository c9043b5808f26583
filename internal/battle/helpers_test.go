package battle

import (
	"math/rand"
	"sort"
	"time"
)

// fakeScheduler drives engine timers manually so tests control time.
type fakeScheduler struct {
	now     time.Duration
	seq     Token
	pending []fakeTimer
}

type fakeTimer struct {
	tok Token
	due time.Duration
	fn  func()
}

func (s *fakeScheduler) Schedule(delay time.Duration, fn func()) Token {
	s.seq++
	s.pending = append(s.pending, fakeTimer{tok: s.seq, due: s.now + delay, fn: fn})
	return s.seq
}

func (s *fakeScheduler) Cancel(tok Token) {
	for i := range s.pending {
		if s.pending[i].tok == tok {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

// advance moves the clock forward, firing due timers in order.
func (s *fakeScheduler) advance(d time.Duration) {
	s.now += d
	for {
		sort.SliceStable(s.pending, func(i, j int) bool { return s.pending[i].due < s.pending[j].due })
		if len(s.pending) == 0 || s.pending[0].due > s.now {
			return
		}
		next := s.pending[0]
		s.pending = s.pending[1:]
		next.fn()
	}
}

func (s *fakeScheduler) pendingCount() int { return len(s.pending) }

// fakeHost is an in-memory player for engine tests.
type fakeHost struct {
	balances   map[ResourceKind]float64
	buffs      PlayerBuffs
	assistants []string
	removed    []string
}

func newFakeHost(snowballs float64) *fakeHost {
	return &fakeHost{balances: map[ResourceKind]float64{ResourceSnowballs: snowballs}}
}

func (h *fakeHost) PlayerPower() float64                    { return h.balances[ResourceSnowballs] }
func (h *fakeHost) PlayerBuffs() PlayerBuffs                { return h.buffs }
func (h *fakeHost) ResourceBalance(k ResourceKind) float64  { return h.balances[k] }
func (h *fakeHost) MutateResource(k ResourceKind, d float64) { h.balances[k] += d }

func (h *fakeHost) AssistantIDs() []string {
	out := make([]string, len(h.assistants))
	copy(out, h.assistants)
	return out
}

func (h *fakeHost) RemoveAssistant(id string) bool {
	for i, a := range h.assistants {
		if a == id {
			h.assistants = append(h.assistants[:i], h.assistants[i+1:]...)
			h.removed = append(h.removed, id)
			return true
		}
	}
	return false
}

// outcomeRecorder captures hook invocations.
type outcomeRecorder struct {
	spawned  []OpposingActor
	cleared  int
	outcomes []ResolutionOutcome
}

func (r *outcomeRecorder) hooks() Hooks {
	return Hooks{
		EncounterSpawned: func(a OpposingActor) { r.spawned = append(r.spawned, a) },
		EncounterCleared: func() { r.cleared++ },
		Resolution:       func(o ResolutionOutcome) { r.outcomes = append(r.outcomes, o) },
	}
}

// newTestEngine wires an engine with the fake scheduler and host.
func newTestEngine(cfg Config, host Host, rec *outcomeRecorder) (*Engine, *fakeScheduler) {
	sched := &fakeScheduler{}
	var hooks Hooks
	if rec != nil {
		hooks = rec.hooks()
	}
	e, err := New(cfg, host, sched, rand.New(rand.NewSource(7)), hooks)
	if err != nil {
		panic(err)
	}
	return e, sched
}

// plantActor installs a live actor directly so resolution tests can
// pin the opponent power instead of sampling it.
func plantActor(e *Engine, sched *fakeScheduler, class OpponentClass, power int64) OpposingActor {
	actor := &OpposingActor{
		ID:             "actor-1",
		Class:          class,
		Power:          power,
		SpawnTime:      time.Now(),
		ExpiryDuration: e.cfg.despawnDelayFor(class),
	}
	e.mu.Lock()
	e.actor = actor
	id := actor.ID
	e.despawnToken = sched.Schedule(actor.ExpiryDuration, func() { e.despawn(id) })
	e.mu.Unlock()
	return *actor
}
