package battle

import (
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestConfigValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"probability above 1", func(c *Config) { c.SpawnProbability = 1.01 }},
		{"negative probability", func(c *Config) { c.SpawnProbability = -0.2 }},
		{"negative spawn delay", func(c *Config) { c.SpawnDelay = -time.Second }},
		{"zero despawn delay", func(c *Config) { c.DefaultDespawnDelay = 0 }},
		{"unknown class override", func(c *Config) {
			c.DespawnDelays = map[OpponentClass]time.Duration{"yeti": time.Second}
		}},
		{"zero class override", func(c *Config) {
			c.DespawnDelays = map[OpponentClass]time.Duration{ClassSiphon: 0}
		}},
		{"inverted power bounds", func(c *Config) { c.PowerMin, c.PowerMax = c.PowerMax, c.PowerMin }},
		{"center outside bounds", func(c *Config) { c.PowerCenter = 2 }},
		{"zero stddev", func(c *Config) { c.PowerStdDev = 0 }},
		{"drain fraction above 1", func(c *Config) { c.SiphonDrainFraction = 1.5 }},
		{"negative icicle drain", func(c *Config) { c.AnchorIcicleDrain = -1 }},
		{"zero ledger limit", func(c *Config) { c.LedgerLimit = 0 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

func TestDespawnDelayPerClassOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DespawnDelays = map[OpponentClass]time.Duration{ClassSiphon: 5 * time.Second}
	if got := cfg.despawnDelayFor(ClassSiphon); got != 5*time.Second {
		t.Fatalf("expected override 5s, got %v", got)
	}
	if got := cfg.despawnDelayFor(ClassAnchor); got != 20*time.Second {
		t.Fatalf("expected default 20s, got %v", got)
	}
}
