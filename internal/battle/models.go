package battle

import "time"

// ResourceKind names a player resource the engine can read or drain.
type ResourceKind string

const (
	ResourceSnowballs  ResourceKind = "snowballs"
	ResourceAssistant  ResourceKind = "assistant"
	ResourceIcicles    ResourceKind = "icicles"
	ResourceSnowflakes ResourceKind = "snowflakes"
)

// threatenedResource maps each opposing class to the resource it
// drains on a player defeat. The mapping is fixed.
var threatenedResource = map[OpponentClass]ResourceKind{
	ClassSiphon:    ResourceSnowballs,
	ClassAssailant: ResourceAssistant,
	ClassAnchor:    ResourceIcicles,
	ClassScrambler: ResourceSnowflakes,
}

// ThreatenedResource reports which resource a class drains on defeat.
func ThreatenedResource(class OpponentClass) ResourceKind {
	return threatenedResource[class]
}

// OpposingActor is a live hostile spawn. Power is locked in from the
// player's power at spawn time and never recomputed afterwards.
type OpposingActor struct {
	ID                string        `json:"id"`
	Class             OpponentClass `json:"class"`
	BasePowerFraction float64       `json:"base_power_fraction"`
	Power             int64         `json:"power"`
	SpawnTime         time.Time     `json:"spawn_time"`
	ExpiryDuration    time.Duration `json:"expiry_duration"`
}

// EngagementRecord tracks the player's commitment to fight a live
// spawn. At most one exists at a time; while it exists the despawn
// timer must not clear the actor.
type EngagementRecord struct {
	ActorID string        `json:"actor_id"`
	Class   OpponentClass `json:"class"`
	// Effect is the resource kind threatened while the fight is active.
	Effect    ResourceKind `json:"effect"`
	StartTime time.Time    `json:"start_time"`
	Resolved  bool         `json:"resolved"`
}

// WinType distinguishes how a victory was obtained.
type WinType string

const (
	WinNone           WinType = ""
	WinNormal         WinType = "normal"
	WinClassAdvantage WinType = "class_advantage"
)

// ResolutionOutcome is produced once per engagement and handed to the
// Resolution hook, then summarized into the ledger.
type ResolutionOutcome struct {
	PlayerWon        bool          `json:"player_won"`
	WinType          WinType       `json:"win_type"`
	RewardMultiplier int           `json:"reward_multiplier"`
	SnowballReward   int64         `json:"snowball_reward"`
	Penalty          Penalty       `json:"-"`
	OpponentClass    OpponentClass `json:"opponent_class"`
	OpponentPower    int64         `json:"opponent_power"`
}

// resultKind collapses an outcome into the ledger's result label.
func resultKind(o ResolutionOutcome) string {
	if !o.PlayerWon {
		return "defeat"
	}
	return string(o.WinType)
}
