package battle

// Host exposes the player-state collaborators the engine consumes.
// The engine never reaches into ambient globals; a Host is injected at
// construction so the engine is unit-testable without the rest of the
// game.
type Host interface {
	// PlayerPower returns the current primary-currency balance, which
	// doubles as the player's power.
	PlayerPower() float64
	// PlayerBuffs returns the buffs active right now. Consulted at
	// resolution time, not spawn time.
	PlayerBuffs() PlayerBuffs
	// ResourceBalance reads a raw balance.
	ResourceBalance(kind ResourceKind) float64
	// MutateResource applies a delta to a raw balance. Callers are
	// responsible for never driving a balance negative.
	MutateResource(kind ResourceKind, delta float64)
	// AssistantIDs lists the ids of currently owned assistant
	// instances.
	AssistantIDs() []string
	// RemoveAssistant deletes one owned instance and reports whether
	// it existed. Implementations must recompute any production
	// aggregate derived from the roster.
	RemoveAssistant(id string) bool
}

// Hooks are the callbacks the engine fires toward the UI/host. All
// hooks run after the corresponding state mutation has fully applied.
// Nil hooks are skipped.
type Hooks struct {
	EncounterSpawned func(actor OpposingActor)
	EncounterCleared func()
	Resolution       func(outcome ResolutionOutcome)
}
