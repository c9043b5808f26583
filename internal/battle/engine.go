package battle

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/logging"
	"github.com/google/uuid"
)

// Engine runs the encounter lifecycle for one player: spawn a timed
// hostile actor, accept an engagement, resolve it against the player's
// power and buffs, and apply rewards or penalties. All mutation is
// serialized by a single mutex; timers fire through the injected
// Scheduler and re-enter through the same lock, so no two callbacks
// ever interleave mid-mutation.
type Engine struct {
	mu sync.Mutex

	cfg     Config
	host    Host
	sched   Scheduler
	rng     *rand.Rand
	sampler *PowerSampler
	hooks   Hooks

	triggerAllowed bool

	actor      *OpposingActor
	engagement *EngagementRecord
	ledger     *Ledger
	// abilityLevel is a monotonic progression counter incremented on
	// every victory. Cosmetic for now; reserved for a future ability
	// system.
	abilityLevel int

	spawnPending bool
	spawnToken   Token
	despawnToken Token
	resolveToken Token
}

// New builds an engine. The configuration is validated eagerly:
// malformed tuning is a developer error and should fail at wiring
// time, not mid-game.
func New(cfg Config, host Host, sched Scheduler, rng *rand.Rand, hooks Hooks) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("battle config: %w", err)
	}
	if host == nil || sched == nil || rng == nil {
		return nil, fmt.Errorf("battle engine requires host, scheduler and rng")
	}
	return &Engine{
		cfg:     cfg,
		host:    host,
		sched:   sched,
		rng:     rng,
		sampler: NewPowerSampler(rng),
		hooks:   hooks,
		ledger:  NewLedger(cfg.LedgerLimit),
	}, nil
}

// SetTriggerAllowed gates spawning on the host's unlock flag.
func (e *Engine) SetTriggerAllowed(allowed bool) {
	e.mu.Lock()
	e.triggerAllowed = allowed
	e.mu.Unlock()
}

// SetSpawnProbability replaces the per-trigger spawn chance. Out of
// range values fail fast.
func (e *Engine) SetSpawnProbability(p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("spawn probability %v outside [0,1]", p)
	}
	e.mu.Lock()
	e.cfg.SpawnProbability = p
	e.mu.Unlock()
	return nil
}

// MaybeSpawn is called by the host on every qualifying trigger. When
// the gate is open and the roll succeeds, an actor is scheduled to
// appear after the spawn delay.
func (e *Engine) MaybeSpawn() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.triggerAllowed || e.spawnPending {
		return
	}
	if e.rng.Float64() > e.cfg.SpawnProbability {
		return
	}
	e.spawnPending = true
	e.spawnToken = e.sched.Schedule(e.cfg.SpawnDelay, e.spawnNow)
}

// spawnNow materializes the scheduled actor. Power is sampled against
// the player's power at this moment and locked permanently.
func (e *Engine) spawnNow() {
	e.mu.Lock()
	e.spawnPending = false
	if e.engagement != nil {
		// A fight is in flight; never disturb an engaged encounter.
		e.mu.Unlock()
		return
	}
	cleared := false
	if e.actor != nil {
		// Replace a lingering un-engaged spawn silently.
		e.sched.Cancel(e.despawnToken)
		e.actor = nil
		cleared = true
	}
	frac := e.sampler.Sample(e.cfg.PowerCenter, e.cfg.PowerMin, e.cfg.PowerMax, e.cfg.PowerStdDev)
	class := OpponentClasses[e.rng.Intn(len(OpponentClasses))]
	expiry := e.cfg.despawnDelayFor(class)
	actor := &OpposingActor{
		ID:                uuid.NewString(),
		Class:             class,
		BasePowerFraction: frac,
		Power:             int64(math.Round(frac * e.host.PlayerPower())),
		SpawnTime:         time.Now(),
		ExpiryDuration:    expiry,
	}
	e.actor = actor
	id := actor.ID
	e.despawnToken = e.sched.Schedule(expiry, func() { e.despawn(id) })
	hooks := e.hooks
	snapshot := *actor
	e.mu.Unlock()

	if cleared && hooks.EncounterCleared != nil {
		hooks.EncounterCleared()
	}
	if hooks.EncounterSpawned != nil {
		hooks.EncounterSpawned(snapshot)
	}
}

// despawn clears an actor whose window expired without an engagement.
func (e *Engine) despawn(actorID string) {
	e.mu.Lock()
	if e.actor == nil || e.actor.ID != actorID || e.engagement != nil {
		// Already replaced, or engaged; an engaged encounter is only
		// ever cleared by resolution.
		e.mu.Unlock()
		return
	}
	e.actor = nil
	hooks := e.hooks
	e.mu.Unlock()
	if hooks.EncounterCleared != nil {
		hooks.EncounterCleared()
	}
}

// Engage commits the player to fight the live spawn. Mismatched or
// duplicate attempts are expected under stale UI clicks and are
// ignored, not errors.
func (e *Engine) Engage(actorID string) {
	e.mu.Lock()
	if e.actor == nil || e.actor.ID != actorID || e.engagement != nil {
		e.mu.Unlock()
		logging.Debug("ignoring invalid engage", logging.Fields{"actor_id": actorID})
		return
	}
	rec := &EngagementRecord{
		ActorID:   actorID,
		Class:     e.actor.Class,
		Effect:    threatenedResource[e.actor.Class],
		StartTime: time.Now(),
	}
	e.engagement = rec
	// Passive income earned inside the resolve window still counts
	// toward the player's power.
	e.resolveToken = e.sched.Schedule(e.cfg.ResolveDelay, func() { e.resolve(rec) })
	e.mu.Unlock()
}

// resolve concludes an engagement: compares powers, consults the
// advantage table with the buffs active right now, and applies the
// reward or penalty before any hook observes the result.
func (e *Engine) resolve(rec *EngagementRecord) {
	e.mu.Lock()
	if rec.Resolved || e.engagement != rec || e.actor == nil || e.actor.ID != rec.ActorID {
		// Cleared or already handled before the timer fired.
		e.mu.Unlock()
		return
	}
	rec.Resolved = true
	actor := e.actor

	playerPower := e.host.PlayerPower()
	adv := ResolveAdvantage(actor.Class, e.host.PlayerBuffs())

	outcome := ResolutionOutcome{
		OpponentClass: actor.Class,
		OpponentPower: actor.Power,
	}
	switch {
	case adv.HasAdvantage:
		outcome.PlayerWon = true
		outcome.WinType = WinClassAdvantage
		outcome.RewardMultiplier = 2
		if adv.StackedBonus {
			outcome.RewardMultiplier = 3
		}
	case playerPower >= float64(actor.Power):
		// Non-strict comparison: an exact tie is a player win.
		outcome.PlayerWon = true
		outcome.WinType = WinNormal
		outcome.RewardMultiplier = 1
	}

	if outcome.PlayerWon {
		outcome.SnowballReward = actor.Power * int64(outcome.RewardMultiplier)
		e.host.MutateResource(ResourceSnowballs, float64(outcome.SnowballReward))
		e.abilityLevel++
	} else {
		outcome.Penalty = e.applyPenalty(actor.Class)
	}

	e.actor = nil
	e.engagement = nil
	e.sched.Cancel(e.despawnToken)
	e.ledger.Record(LedgerEntry{
		Timestamp:        time.Now(),
		ActorClass:       actor.Class,
		PlayerWon:        outcome.PlayerWon,
		ResultKind:       resultKind(outcome),
		SnowballSnapshot: e.host.ResourceBalance(ResourceSnowballs),
	})
	hooks := e.hooks
	e.mu.Unlock()

	if hooks.EncounterCleared != nil {
		hooks.EncounterCleared()
	}
	if hooks.Resolution != nil {
		hooks.Resolution(outcome)
	}
}

// Reset clears any live encounter and cancels outstanding timers.
// Hooks stay silent here: teardown is not a gameplay event.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelTimersLocked()
	e.actor = nil
	e.engagement = nil
	e.spawnPending = false
}

func (e *Engine) cancelTimersLocked() {
	e.sched.Cancel(e.spawnToken)
	e.sched.Cancel(e.despawnToken)
	e.sched.Cancel(e.resolveToken)
}

// CurrentActor returns a copy of the live actor, if any.
func (e *Engine) CurrentActor() (OpposingActor, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.actor == nil {
		return OpposingActor{}, false
	}
	return *e.actor, true
}

// CurrentEngagement returns a copy of the pending engagement, if any.
func (e *Engine) CurrentEngagement() (EngagementRecord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.engagement == nil {
		return EngagementRecord{}, false
	}
	return *e.engagement, true
}

// AbilityLevel returns the victory progression counter.
func (e *Engine) AbilityLevel() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.abilityLevel
}

// LedgerEntries returns the encounter history, oldest first.
func (e *Engine) LedgerEntries() []LedgerEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ledger.Entries()
}
