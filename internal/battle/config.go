package battle

import (
	"fmt"
	"time"
)

// Config tunes the encounter engine. Values come from the server
// config file; Validate rejects developer errors at configuration
// time rather than letting them surface as runtime misbehavior.
type Config struct {
	// SpawnProbability is the chance a qualifying trigger schedules a
	// spawn, in [0, 1].
	SpawnProbability float64
	// SpawnDelay is the pause between a successful spawn roll and the
	// actor appearing. Gives the narrative beat room to play out.
	SpawnDelay time.Duration
	// ResolveDelay is the pause between engagement and resolution.
	// Deliberately non-zero: passive income earned inside the window
	// still counts toward the player's power.
	ResolveDelay time.Duration
	// DespawnDelays overrides the un-engaged lifetime per class;
	// DefaultDespawnDelay applies to classes without an override.
	DespawnDelays       map[OpponentClass]time.Duration
	DefaultDespawnDelay time.Duration

	// Opponent power sampling (fractions of player power).
	PowerCenter float64
	PowerMin    float64
	PowerMax    float64
	PowerStdDev float64

	// Defeat penalties.
	SiphonDrainFraction     float64
	AnchorIcicleDrain       float64
	ScramblerSnowflakeDrain float64

	LedgerLimit int
}

// DefaultConfig is the reference tuning: opponents average 85% of the
// player's power, floored at 50% and capped at 120%.
func DefaultConfig() Config {
	return Config{
		SpawnProbability:        0.25,
		SpawnDelay:              10 * time.Second,
		ResolveDelay:            1 * time.Second,
		DefaultDespawnDelay:     20 * time.Second,
		PowerCenter:             0.85,
		PowerMin:                0.5,
		PowerMax:                1.2,
		PowerStdDev:             0.15,
		SiphonDrainFraction:     0.10,
		AnchorIcicleDrain:       5,
		ScramblerSnowflakeDrain: 3,
		LedgerLimit:             50,
	}
}

func (c Config) Validate() error {
	if c.SpawnProbability < 0 || c.SpawnProbability > 1 {
		return fmt.Errorf("spawn probability %v outside [0,1]", c.SpawnProbability)
	}
	if c.SpawnDelay < 0 {
		return fmt.Errorf("spawn delay %v is negative", c.SpawnDelay)
	}
	if c.ResolveDelay < 0 {
		return fmt.Errorf("resolve delay %v is negative", c.ResolveDelay)
	}
	if c.DefaultDespawnDelay <= 0 {
		return fmt.Errorf("default despawn delay %v must be positive", c.DefaultDespawnDelay)
	}
	for class, d := range c.DespawnDelays {
		if _, ok := oppositionTable[class]; !ok {
			return fmt.Errorf("despawn delay configured for unknown class %q", class)
		}
		if d <= 0 {
			return fmt.Errorf("despawn delay %v for class %q must be positive", d, class)
		}
	}
	if !(c.PowerMin < c.PowerCenter && c.PowerCenter < c.PowerMax) {
		return fmt.Errorf("power bounds must satisfy min < center < max, got min=%v center=%v max=%v", c.PowerMin, c.PowerCenter, c.PowerMax)
	}
	if c.PowerStdDev <= 0 {
		return fmt.Errorf("power stddev %v must be positive", c.PowerStdDev)
	}
	if c.SiphonDrainFraction < 0 || c.SiphonDrainFraction > 1 {
		return fmt.Errorf("siphon drain fraction %v outside [0,1]", c.SiphonDrainFraction)
	}
	if c.AnchorIcicleDrain < 0 {
		return fmt.Errorf("anchor icicle drain %v is negative", c.AnchorIcicleDrain)
	}
	if c.ScramblerSnowflakeDrain < 0 {
		return fmt.Errorf("scrambler snowflake drain %v is negative", c.ScramblerSnowflakeDrain)
	}
	if c.LedgerLimit <= 0 {
		return fmt.Errorf("ledger limit %d must be positive", c.LedgerLimit)
	}
	return nil
}

// despawnDelayFor returns the configured lifetime for a class.
func (c Config) despawnDelayFor(class OpponentClass) time.Duration {
	if d, ok := c.DespawnDelays[class]; ok {
		return d
	}
	return c.DefaultDespawnDelay
}
