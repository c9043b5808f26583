package service

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/game"
)

// AssistantCost returns the price of the next assistant of a kind
// given how many the player already owns. Costs scale geometrically
// and are rounded up to whole snowballs.
func AssistantCost(kind game.AssistantKind, owned int) float64 {
	return math.Ceil(kind.BaseCost * math.Pow(kind.CostScale, float64(owned)))
}

// BuyAssistant debits the next-tier cost, records the new assistant
// and recomputes the player's production rate.
func BuyAssistant(repo PlayerRepo, catalog Catalog, playerUUID, kindKey string) (*game.Player, error) {
	kind, ok := catalog[kindKey]
	if !ok {
		return nil, ErrUnknownAssistantKind
	}
	p, err := repo.GetPlayerByUUID(playerUUID)
	if err != nil {
		return nil, ErrPlayerNotFound
	}
	Accrue(p, time.Now())

	owned := 0
	for _, a := range p.Assistants {
		if a.Kind == kind.Key {
			owned++
		}
	}
	cost := AssistantCost(kind, owned)
	if p.Snowballs < cost {
		return nil, ErrNotEnoughSnowballs
	}
	p.Snowballs -= cost

	a := &game.Assistant{
		PlayerID:      p.ID,
		AssistantUUID: uuid.NewString(),
		Kind:          kind.Key,
		Rate:          kind.Rate,
	}
	if err := repo.AddAssistant(a); err != nil {
		return nil, err
	}
	roster, err := repo.ListAssistants(p.ID)
	if err != nil {
		return nil, err
	}
	p.Assistants = roster
	RecomputeProduction(p, roster)
	if err := repo.UpdatePlayer(p); err != nil {
		return nil, err
	}
	return p, nil
}
