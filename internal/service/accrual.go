package service

import (
	"time"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/game"
)

// Accrue folds passive income earned since the last accrual into the
// player's snowball balance. Safe against clock skew: a non-positive
// elapsed interval leaves the balance untouched.
func Accrue(p *game.Player, now time.Time) {
	if p.LastAccrual.IsZero() {
		p.LastAccrual = now
		return
	}
	elapsed := now.Sub(p.LastAccrual).Seconds()
	if elapsed <= 0 {
		return
	}
	p.Snowballs += p.SnowballsPerSecond * elapsed
	p.LastAccrual = now
}

// RecomputeProduction rebuilds the per-second rate from the current
// assistant roster. Called after every purchase or loss.
func RecomputeProduction(p *game.Player, assistants []game.Assistant) {
	var total float64
	for _, a := range assistants {
		total += a.Rate
	}
	p.SnowballsPerSecond = total
}

// RefreshPlayer loads a player, folds pending accrual and persists the
// updated balance.
func RefreshPlayer(repo PlayerRepo, playerUUID string) (*game.Player, error) {
	p, err := repo.GetPlayerByUUID(playerUUID)
	if err != nil {
		return nil, ErrPlayerNotFound
	}
	Accrue(p, time.Now())
	if err := repo.UpdatePlayer(p); err != nil {
		return nil, err
	}
	return p, nil
}
