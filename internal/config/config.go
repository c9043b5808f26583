package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/battle"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/game"
)

type assistantEntry struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"display_name"`
	BaseCost    float64 `json:"base_cost"`
	CostScale   float64 `json:"cost_scale"`
	Rate        float64 `json:"rate"`
}

type battleEntry struct {
	SpawnProbability *float64 `json:"spawn_probability"`
	SpawnDelayMs     *int     `json:"spawn_delay_ms"`
	ResolveDelayMs   *int     `json:"resolve_delay_ms"`
	// Per-class despawn overrides, keyed by class name.
	DespawnMs        map[string]int `json:"despawn_ms"`
	DefaultDespawnMs *int           `json:"default_despawn_ms"`

	PowerCenter *float64 `json:"power_center"`
	PowerMin    *float64 `json:"power_min"`
	PowerMax    *float64 `json:"power_max"`
	PowerStdDev *float64 `json:"power_stddev"`

	SiphonDrainFraction     *float64 `json:"siphon_drain_fraction"`
	AnchorIcicleDrain       *float64 `json:"anchor_icicle_drain"`
	ScramblerSnowflakeDrain *float64 `json:"scrambler_snowflake_drain"`

	LedgerLimit *int `json:"ledger_limit"`
}

type rawConfig struct {
	AssistantList []assistantEntry `json:"assistant_list"`
	Server        *struct {
		Address string `json:"address"`
	} `json:"server"`
	Battle *battleEntry `json:"battle"`
	// Starting click power for new players.
	ClickPower *float64 `json:"click_power"`
}

// LoadedConfig contains the assistant catalog, the battle tuning and
// the server address to bind to.
type LoadedConfig struct {
	Assistants    []game.AssistantKind
	Battle        battle.Config
	ServerAddress string
	ClickPower    float64
}

// LoadConfig reads the configuration file at path. It requires the key
// `assistant_list`; battle tuning keys are optional and overlay the
// engine defaults. Malformed values fail here, at startup, with a
// descriptive error.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.AssistantList) == 0 {
		return nil, fmt.Errorf("config file %s: assistant_list is empty (provide 'assistant_list' array)", path)
	}

	kinds := make([]game.AssistantKind, 0, len(rc.AssistantList))
	keySet := make(map[string]struct{}, len(rc.AssistantList))
	for _, a := range rc.AssistantList {
		key := strings.TrimSpace(a.Key)
		if key == "" {
			return nil, fmt.Errorf("config file %s: assistant entry missing 'key'", path)
		}
		if _, exists := keySet[strings.ToLower(key)]; exists {
			return nil, fmt.Errorf("config file %s: duplicate assistant key '%s'", path, key)
		}
		keySet[strings.ToLower(key)] = struct{}{}
		if a.BaseCost <= 0 {
			return nil, fmt.Errorf("config file %s: assistant '%s' base_cost must be positive", path, key)
		}
		if a.Rate <= 0 {
			return nil, fmt.Errorf("config file %s: assistant '%s' rate must be positive", path, key)
		}
		scale := a.CostScale
		if scale == 0 {
			scale = 1.15
		}
		if scale < 1 {
			return nil, fmt.Errorf("config file %s: assistant '%s' cost_scale must be >= 1", path, key)
		}
		name := a.DisplayName
		if name == "" {
			name = key
		}
		kinds = append(kinds, game.AssistantKind{
			Key:         key,
			DisplayName: name,
			BaseCost:    a.BaseCost,
			CostScale:   scale,
			Rate:        a.Rate,
		})
	}

	bc, err := buildBattleConfig(rc.Battle, path)
	if err != nil {
		return nil, err
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}
	clickPower := 1.0
	if rc.ClickPower != nil {
		if *rc.ClickPower <= 0 {
			return nil, fmt.Errorf("config file %s: click_power must be positive", path)
		}
		clickPower = *rc.ClickPower
	}

	return &LoadedConfig{
		Assistants:    kinds,
		Battle:        bc,
		ServerAddress: addr,
		ClickPower:    clickPower,
	}, nil
}

// buildBattleConfig overlays the optional battle section onto the
// engine defaults and validates the result.
func buildBattleConfig(be *battleEntry, path string) (battle.Config, error) {
	bc := battle.DefaultConfig()
	if be != nil {
		if be.SpawnProbability != nil {
			bc.SpawnProbability = *be.SpawnProbability
		}
		if be.SpawnDelayMs != nil {
			bc.SpawnDelay = time.Duration(*be.SpawnDelayMs) * time.Millisecond
		}
		if be.ResolveDelayMs != nil {
			bc.ResolveDelay = time.Duration(*be.ResolveDelayMs) * time.Millisecond
		}
		if be.DefaultDespawnMs != nil {
			bc.DefaultDespawnDelay = time.Duration(*be.DefaultDespawnMs) * time.Millisecond
		}
		if len(be.DespawnMs) > 0 {
			bc.DespawnDelays = make(map[battle.OpponentClass]time.Duration, len(be.DespawnMs))
			for class, ms := range be.DespawnMs {
				bc.DespawnDelays[battle.OpponentClass(class)] = time.Duration(ms) * time.Millisecond
			}
		}
		if be.PowerCenter != nil {
			bc.PowerCenter = *be.PowerCenter
		}
		if be.PowerMin != nil {
			bc.PowerMin = *be.PowerMin
		}
		if be.PowerMax != nil {
			bc.PowerMax = *be.PowerMax
		}
		if be.PowerStdDev != nil {
			bc.PowerStdDev = *be.PowerStdDev
		}
		if be.SiphonDrainFraction != nil {
			bc.SiphonDrainFraction = *be.SiphonDrainFraction
		}
		if be.AnchorIcicleDrain != nil {
			bc.AnchorIcicleDrain = *be.AnchorIcicleDrain
		}
		if be.ScramblerSnowflakeDrain != nil {
			bc.ScramblerSnowflakeDrain = *be.ScramblerSnowflakeDrain
		}
		if be.LedgerLimit != nil {
			bc.LedgerLimit = *be.LedgerLimit
		}
	}
	if err := bc.Validate(); err != nil {
		return battle.Config{}, fmt.Errorf("config file %s: battle tuning: %w", path, err)
	}
	return bc, nil
}
