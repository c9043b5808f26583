package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "frenzy_config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `{
		"assistant_list": [
			{"key": "shoveler", "display_name": "Snow Shoveler", "base_cost": 10, "rate": 0.5}
		]
	}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("expected default address, got %q", cfg.ServerAddress)
	}
	if cfg.ClickPower != 1 {
		t.Fatalf("expected default click power 1, got %v", cfg.ClickPower)
	}
	if len(cfg.Assistants) != 1 || cfg.Assistants[0].CostScale != 1.15 {
		t.Fatalf("expected default cost scale 1.15, got %+v", cfg.Assistants)
	}
	if cfg.Battle.SpawnDelay != 10*time.Second || cfg.Battle.LedgerLimit != 50 {
		t.Fatalf("expected default battle tuning, got %+v", cfg.Battle)
	}
}

func TestLoadConfigBattleOverlay(t *testing.T) {
	path := writeConfig(t, `{
		"assistant_list": [{"key": "shoveler", "base_cost": 10, "rate": 0.5}],
		"battle": {
			"spawn_probability": 0.5,
			"spawn_delay_ms": 2000,
			"resolve_delay_ms": 500,
			"despawn_ms": {"siphon": 30000},
			"ledger_limit": 25
		}
	}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Battle.SpawnProbability != 0.5 || cfg.Battle.SpawnDelay != 2*time.Second {
		t.Fatalf("overlay not applied: %+v", cfg.Battle)
	}
	if cfg.Battle.DespawnDelays["siphon"] != 30*time.Second {
		t.Fatalf("per-class despawn override not applied: %+v", cfg.Battle.DespawnDelays)
	}
	if cfg.Battle.LedgerLimit != 25 {
		t.Fatalf("ledger limit override not applied: %+v", cfg.Battle)
	}
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty assistant list", `{"assistant_list": []}`},
		{"missing key", `{"assistant_list": [{"base_cost": 10, "rate": 1}]}`},
		{"duplicate key", `{"assistant_list": [
			{"key": "a", "base_cost": 10, "rate": 1},
			{"key": "A", "base_cost": 10, "rate": 1}
		]}`},
		{"zero cost", `{"assistant_list": [{"key": "a", "base_cost": 0, "rate": 1}]}`},
		{"zero rate", `{"assistant_list": [{"key": "a", "base_cost": 10, "rate": 0}]}`},
		{"cost scale below 1", `{"assistant_list": [{"key": "a", "base_cost": 10, "rate": 1, "cost_scale": 0.5}]}`},
		{"bad probability", `{"assistant_list": [{"key": "a", "base_cost": 10, "rate": 1}],
			"battle": {"spawn_probability": 2}}`},
		{"unknown despawn class", `{"assistant_list": [{"key": "a", "base_cost": 10, "rate": 1}],
			"battle": {"despawn_ms": {"yeti": 1000}}}`},
		{"bad click power", `{"assistant_list": [{"key": "a", "base_cost": 10, "rate": 1}], "click_power": 0}`},
		{"malformed json", `{`},
	}
	for _, tc := range cases {
		path := writeConfig(t, tc.body)
		if _, err := LoadConfig(path); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
