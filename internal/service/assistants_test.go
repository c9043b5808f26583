package service

import (
	"testing"
	"time"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/game"
)

func testCatalog() Catalog {
	return NewCatalog([]game.AssistantKind{
		{Key: "shoveler", DisplayName: "Shoveler", BaseCost: 10, CostScale: 1.15, Rate: 1},
		{Key: "plow", DisplayName: "Snow Plow", BaseCost: 100, CostScale: 1.2, Rate: 8},
	})
}

func TestAssistantCostScaling(t *testing.T) {
	kind := game.AssistantKind{BaseCost: 10, CostScale: 1.15}
	cases := []struct {
		owned int
		want  float64
	}{
		{0, 10},
		{1, 12}, // ceil(11.5)
		{2, 14}, // ceil(13.2...)
		{5, 21}, // ceil(20.1...)
	}
	for _, tc := range cases {
		if got := AssistantCost(kind, tc.owned); got != tc.want {
			t.Errorf("cost(owned=%d) = %v, want %v", tc.owned, got, tc.want)
		}
	}
}

func TestBuyAssistantDebitsAndRecomputesRate(t *testing.T) {
	repo := newMockRepo()
	repo.addPlayer(&game.Player{PlayerUUID: "p1", Snowballs: 100, LastAccrual: time.Now()})

	p, err := BuyAssistant(repo, testCatalog(), "p1", "shoveler")
	if err != nil {
		t.Fatalf("buy: %v", err)
	}
	if p.Snowballs < 89.9 || p.Snowballs > 90.1 {
		t.Fatalf("snowballs = %v, want ~90", p.Snowballs)
	}
	if p.SnowballsPerSecond != 1 {
		t.Fatalf("rate = %v, want 1", p.SnowballsPerSecond)
	}
	if len(p.Assistants) != 1 || p.Assistants[0].Kind != "shoveler" {
		t.Fatalf("roster = %+v, want one shoveler", p.Assistants)
	}
	if p.Assistants[0].AssistantUUID == "" {
		t.Fatalf("assistant uuid not assigned")
	}

	// Second purchase of the same kind pays the scaled price.
	p, err = BuyAssistant(repo, testCatalog(), "p1", "shoveler")
	if err != nil {
		t.Fatalf("second buy: %v", err)
	}
	if p.Snowballs < 77.9 || p.Snowballs > 78.1 {
		t.Fatalf("snowballs = %v, want ~78 after scaled price", p.Snowballs)
	}
	if p.SnowballsPerSecond != 2 {
		t.Fatalf("rate = %v, want 2", p.SnowballsPerSecond)
	}
}

func TestBuyAssistantInsufficientFunds(t *testing.T) {
	repo := newMockRepo()
	repo.addPlayer(&game.Player{PlayerUUID: "p1", Snowballs: 5, LastAccrual: time.Now()})

	if _, err := BuyAssistant(repo, testCatalog(), "p1", "shoveler"); err != ErrNotEnoughSnowballs {
		t.Fatalf("err = %v, want ErrNotEnoughSnowballs", err)
	}
	p, _ := repo.GetPlayerByUUID("p1")
	if len(p.Assistants) != 0 {
		t.Fatalf("roster should stay empty on a failed purchase")
	}
}

func TestBuyAssistantUnknownKind(t *testing.T) {
	repo := newMockRepo()
	repo.addPlayer(&game.Player{PlayerUUID: "p1", Snowballs: 1000, LastAccrual: time.Now()})

	if _, err := BuyAssistant(repo, testCatalog(), "p1", "zamboni"); err != ErrUnknownAssistantKind {
		t.Fatalf("err = %v, want ErrUnknownAssistantKind", err)
	}
}
