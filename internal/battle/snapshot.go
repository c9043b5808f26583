package battle

import (
	"encoding/json"
	"fmt"
	"time"
)

// snapshotState is the engine's own small persistence blob. Player
// balances belong to the host save and are deliberately absent.
type snapshotState struct {
	Actor        *OpposingActor    `json:"actor,omitempty"`
	Engagement   *EngagementRecord `json:"engagement,omitempty"`
	Ledger       []LedgerEntry     `json:"ledger"`
	AbilityLevel int               `json:"ability_level"`
}

// Snapshot serializes the current actor, pending engagement, ledger
// and progression counter.
func (e *Engine) Snapshot() ([]byte, error) {
	e.mu.Lock()
	st := snapshotState{
		Ledger:       e.ledger.Entries(),
		AbilityLevel: e.abilityLevel,
	}
	if e.actor != nil {
		a := *e.actor
		st.Actor = &a
	}
	if e.engagement != nil {
		r := *e.engagement
		st.Engagement = &r
	}
	e.mu.Unlock()
	return json.Marshal(st)
}

// Restore replaces the engine state from a snapshot and re-arms the
// outstanding timer (resolution if an engagement was pending,
// otherwise despawn) from whatever time remains. Elapsed windows fire
// immediately.
func (e *Engine) Restore(data []byte) error {
	var st snapshotState
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("battle snapshot: %w", err)
	}
	if st.Engagement != nil && st.Actor == nil {
		return fmt.Errorf("battle snapshot: engagement without actor")
	}

	e.mu.Lock()
	e.cancelTimersLocked()
	e.spawnPending = false
	e.actor = st.Actor
	e.engagement = st.Engagement
	e.abilityLevel = st.AbilityLevel
	e.ledger.replace(st.Ledger)

	now := time.Now()
	switch {
	case st.Engagement != nil && !st.Engagement.Resolved:
		rec := st.Engagement
		remaining := e.cfg.ResolveDelay - now.Sub(rec.StartTime)
		if remaining < 0 {
			remaining = 0
		}
		e.resolveToken = e.sched.Schedule(remaining, func() { e.resolve(rec) })
	case st.Actor != nil:
		id := st.Actor.ID
		remaining := st.Actor.SpawnTime.Add(st.Actor.ExpiryDuration).Sub(now)
		if remaining < 0 {
			remaining = 0
		}
		e.despawnToken = e.sched.Schedule(remaining, func() { e.despawn(id) })
	}
	e.mu.Unlock()
	return nil
}
