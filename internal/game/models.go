package game

import (
	"time"

	"gorm.io/gorm"
)

// Player is one save: resource balances, active buffs and progression.
// Snowballs double as "power" for battle resolution.
type Player struct {
	gorm.Model
	PlayerUUID string `json:"player_uuid" gorm:"uniqueIndex"`
	PlayerName string `json:"player_name"`

	Snowballs  float64 `json:"snowballs"`
	Icicles    float64 `json:"icicles"`
	Snowflakes float64 `json:"snowflakes"`

	// SnowballsPerSecond is derived from the assistant roster and must
	// be recomputed whenever the roster changes.
	SnowballsPerSecond float64 `json:"snowballs_per_second"`
	ClickPower         float64 `json:"click_power"`
	// LastAccrual marks the moment passive income was last folded into
	// the snowball balance.
	LastAccrual time.Time `json:"last_accrual"`

	// AbilityLevel counts battle victories. Cosmetic progression stub.
	AbilityLevel int `json:"ability_level"`

	// Active class buffs consulted at battle resolution time. Stacked
	// is true only when both slots hold the same class simultaneously.
	BuffPrimary   string `json:"buff_primary"`
	BuffSecondary string `json:"buff_secondary"`
	BuffStacked   bool   `json:"buff_stacked"`

	// BattlesUnlocked gates encounter spawning.
	BattlesUnlocked bool `json:"battles_unlocked"`

	Assistants []Assistant `json:"assistants"`
}

func (Player) TableName() string { return "player_saves" }

// Assistant is one owned producer instance. Stats (rate, cost) come
// from the config catalog keyed by Kind; only ownership is persisted.
type Assistant struct {
	gorm.Model
	PlayerID      uint    `json:"-" gorm:"index"`
	AssistantUUID string  `json:"assistant_uuid" gorm:"index"`
	Kind          string  `json:"kind"`
	Rate          float64 `json:"rate"`
}

func (Assistant) TableName() string { return "assistants" }

// AssistantKind describes a purchasable assistant type. Configured in
// frenzy_config.json, never persisted.
type AssistantKind struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"display_name"`
	BaseCost    float64 `json:"base_cost"`
	// CostScale multiplies the price for each instance already owned.
	CostScale float64 `json:"cost_scale"`
	Rate      float64 `json:"rate"`
}

// EncounterLog is the persisted mirror of the battle ledger, bounded
// to the same entry limit per player.
type EncounterLog struct {
	gorm.Model
	PlayerID         uint      `json:"-" gorm:"index"`
	OccurredAt       time.Time `json:"occurred_at"`
	ActorClass       string    `json:"actor_class"`
	PlayerWon        bool      `json:"player_won"`
	ResultKind       string    `json:"result_kind"`
	SnowballSnapshot float64   `json:"snowball_snapshot"`
}

func (EncounterLog) TableName() string { return "encounter_log" }

// EngineState stores the battle engine's snapshot blob so a live
// encounter survives a restart.
type EngineState struct {
	gorm.Model
	PlayerID uint   `json:"-" gorm:"uniqueIndex"`
	Blob     []byte `json:"-" gorm:"type:blob"`
}

func (EngineState) TableName() string { return "battle_engine_state" }
