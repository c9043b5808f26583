package service

import (
	"time"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/battle"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/game"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/logging"
)

// playerHost adapts a persisted player record to the battle engine's
// host interface. Each call reads fresh state from the repository so
// the engine always resolves against current balances.
type playerHost struct {
	repo       PlayerRepo
	playerUUID string
}

func (h *playerHost) player() (*game.Player, error) {
	return h.repo.GetPlayerByUUID(h.playerUUID)
}

func (h *playerHost) PlayerPower() float64 {
	p, err := h.player()
	if err != nil {
		logging.Error("battle host: player load failed", err, logging.Fields{
			"player_uuid": h.playerUUID,
		})
		return 0
	}
	// Fold pending idle income so resolution sees up-to-the-moment
	// balances rather than the value at the last request.
	Accrue(p, time.Now())
	if err := h.repo.UpdatePlayer(p); err != nil {
		logging.Error("battle host: accrual persist failed", err, logging.Fields{
			"player_uuid": h.playerUUID,
		})
	}
	return p.Snowballs
}

func (h *playerHost) PlayerBuffs() battle.PlayerBuffs {
	p, err := h.player()
	if err != nil {
		return battle.PlayerBuffs{}
	}
	return battle.PlayerBuffs{
		Primary:   battle.BuffClass(p.BuffPrimary),
		Secondary: battle.BuffClass(p.BuffSecondary),
		Stacked:   p.BuffStacked,
	}
}

func (h *playerHost) ResourceBalance(kind battle.ResourceKind) float64 {
	p, err := h.player()
	if err != nil {
		return 0
	}
	switch kind {
	case battle.ResourceSnowballs:
		return p.Snowballs
	case battle.ResourceIcicles:
		return p.Icicles
	case battle.ResourceSnowflakes:
		return p.Snowflakes
	case battle.ResourceAssistant:
		return float64(len(p.Assistants))
	}
	return 0
}

func (h *playerHost) MutateResource(kind battle.ResourceKind, delta float64) {
	p, err := h.player()
	if err != nil {
		logging.Error("battle host: mutate load failed", err, logging.Fields{
			"player_uuid": h.playerUUID,
		})
		return
	}
	apply := func(v float64) float64 {
		v += delta
		if v < 0 {
			v = 0
		}
		return v
	}
	switch kind {
	case battle.ResourceSnowballs:
		p.Snowballs = apply(p.Snowballs)
	case battle.ResourceIcicles:
		p.Icicles = apply(p.Icicles)
	case battle.ResourceSnowflakes:
		p.Snowflakes = apply(p.Snowflakes)
	default:
		return
	}
	if err := h.repo.UpdatePlayer(p); err != nil {
		logging.Error("battle host: mutate persist failed", err, logging.Fields{
			"player_uuid": h.playerUUID,
		})
	}
}

func (h *playerHost) AssistantIDs() []string {
	p, err := h.player()
	if err != nil {
		return nil
	}
	roster, err := h.repo.ListAssistants(p.ID)
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(roster))
	for _, a := range roster {
		ids = append(ids, a.AssistantUUID)
	}
	return ids
}

func (h *playerHost) RemoveAssistant(id string) bool {
	p, err := h.player()
	if err != nil {
		return false
	}
	removed, err := h.repo.RemoveAssistantByUUID(p.ID, id)
	if err != nil || !removed {
		return false
	}
	roster, err := h.repo.ListAssistants(p.ID)
	if err == nil {
		p.Assistants = roster
		RecomputeProduction(p, roster)
		if uerr := h.repo.UpdatePlayer(p); uerr != nil {
			logging.Error("battle host: rate persist failed", uerr, logging.Fields{
				"player_uuid": h.playerUUID,
			})
		}
	}
	return true
}
