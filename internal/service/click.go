package service

import (
	"time"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/game"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/logging"
)

// Click credits manual clicks and feeds the encounter spawner. The
// spawner only rolls while the session has battles unlocked; a nil
// sessions manager simply skips the trigger.
func Click(repo PlayerRepo, sessions *BattleSessions, playerUUID string, count int) (*game.Player, error) {
	if count <= 0 {
		count = 1
	}
	p, err := repo.GetPlayerByUUID(playerUUID)
	if err != nil {
		return nil, ErrPlayerNotFound
	}
	Accrue(p, time.Now())
	p.Snowballs += float64(count) * p.ClickPower
	if err := repo.UpdatePlayer(p); err != nil {
		return nil, err
	}
	if sessions != nil {
		eng, err := sessions.EngineFor(playerUUID)
		if err != nil {
			logging.Error("click: battle engine unavailable", err, logging.Fields{
				"player_uuid": playerUUID,
			})
		} else {
			eng.MaybeSpawn()
		}
	}
	return p, nil
}

// SetBattlesUnlocked flips the encounter gate for a player and keeps
// any live engine in sync.
func SetBattlesUnlocked(repo PlayerRepo, sessions *BattleSessions, playerUUID string, unlocked bool) (*game.Player, error) {
	p, err := repo.GetPlayerByUUID(playerUUID)
	if err != nil {
		return nil, ErrPlayerNotFound
	}
	p.BattlesUnlocked = unlocked
	if err := repo.UpdatePlayer(p); err != nil {
		return nil, err
	}
	if sessions != nil {
		if eng, err := sessions.EngineFor(playerUUID); err == nil {
			eng.SetTriggerAllowed(unlocked)
		}
	}
	return p, nil
}

// SetBuffs updates the player's equipped battle buffs.
func SetBuffs(repo PlayerRepo, playerUUID, primary, secondary string, stacked bool) (*game.Player, error) {
	p, err := repo.GetPlayerByUUID(playerUUID)
	if err != nil {
		return nil, ErrPlayerNotFound
	}
	p.BuffPrimary = primary
	p.BuffSecondary = secondary
	p.BuffStacked = stacked
	if err := repo.UpdatePlayer(p); err != nil {
		return nil, err
	}
	return p, nil
}
