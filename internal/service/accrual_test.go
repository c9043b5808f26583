package service

import (
	"math"
	"testing"
	"time"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/game"
)

func TestAccrueFoldsElapsedIncome(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := &game.Player{
		Snowballs:          100,
		SnowballsPerSecond: 2.5,
		LastAccrual:        base,
	}
	Accrue(p, base.Add(8*time.Second))
	if math.Abs(p.Snowballs-120) > 1e-9 {
		t.Fatalf("snowballs = %v, want 120", p.Snowballs)
	}
	if !p.LastAccrual.Equal(base.Add(8 * time.Second)) {
		t.Fatalf("last accrual not advanced")
	}
}

func TestAccrueFirstCallOnlyStampsClock(t *testing.T) {
	now := time.Now()
	p := &game.Player{Snowballs: 50, SnowballsPerSecond: 10}
	Accrue(p, now)
	if p.Snowballs != 50 {
		t.Fatalf("snowballs = %v, want unchanged 50", p.Snowballs)
	}
	if !p.LastAccrual.Equal(now) {
		t.Fatalf("last accrual not stamped")
	}
}

func TestAccrueIgnoresBackwardsClock(t *testing.T) {
	base := time.Now()
	p := &game.Player{Snowballs: 100, SnowballsPerSecond: 5, LastAccrual: base}
	Accrue(p, base.Add(-time.Minute))
	if p.Snowballs != 100 {
		t.Fatalf("snowballs = %v, want unchanged 100", p.Snowballs)
	}
	if !p.LastAccrual.Equal(base) {
		t.Fatalf("last accrual moved backwards")
	}
}

func TestRecomputeProductionSumsRates(t *testing.T) {
	p := &game.Player{SnowballsPerSecond: 99}
	RecomputeProduction(p, []game.Assistant{{Rate: 1.5}, {Rate: 3}, {Rate: 0.5}})
	if p.SnowballsPerSecond != 5 {
		t.Fatalf("rate = %v, want 5", p.SnowballsPerSecond)
	}
	RecomputeProduction(p, nil)
	if p.SnowballsPerSecond != 0 {
		t.Fatalf("rate = %v, want 0 with empty roster", p.SnowballsPerSecond)
	}
}

func TestClickCreditsClickPower(t *testing.T) {
	repo := newMockRepo()
	repo.addPlayer(&game.Player{PlayerUUID: "p1", Snowballs: 10, ClickPower: 2, LastAccrual: time.Now()})

	p, err := Click(repo, nil, "p1", 3)
	if err != nil {
		t.Fatalf("click: %v", err)
	}
	if p.Snowballs < 16 || p.Snowballs > 16.1 {
		t.Fatalf("snowballs = %v, want ~16", p.Snowballs)
	}
}

func TestClickUnknownPlayer(t *testing.T) {
	repo := newMockRepo()
	if _, err := Click(repo, nil, "missing", 1); err != ErrPlayerNotFound {
		t.Fatalf("err = %v, want ErrPlayerNotFound", err)
	}
}
