package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/battle"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/game"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/logging"
)

// BattleSessions owns one battle engine per active player. Engines are
// created lazily on first use, restored from their persisted snapshot
// and kept for the lifetime of the process.
type BattleSessions struct {
	mu      sync.Mutex
	cfg     battle.Config
	repo    PlayerRepo
	sched   battle.Scheduler
	seed    func() int64
	engines map[string]*battle.Engine
}

func NewBattleSessions(cfg battle.Config, repo PlayerRepo, sched battle.Scheduler) *BattleSessions {
	return &BattleSessions{
		cfg:     cfg,
		repo:    repo,
		sched:   sched,
		seed:    func() int64 { return time.Now().UnixNano() },
		engines: make(map[string]*battle.Engine),
	}
}

// EngineFor returns the player's engine, building and restoring it on
// first call.
func (s *BattleSessions) EngineFor(playerUUID string) (*battle.Engine, error) {
	s.mu.Lock()
	if eng, ok := s.engines[playerUUID]; ok {
		s.mu.Unlock()
		return eng, nil
	}
	s.mu.Unlock()

	p, err := s.repo.GetPlayerByUUID(playerUUID)
	if err != nil {
		return nil, ErrPlayerNotFound
	}

	host := &playerHost{repo: s.repo, playerUUID: playerUUID}
	var eng *battle.Engine
	hooks := battle.Hooks{
		EncounterSpawned: func(battle.OpposingActor) {
			s.persist(p.ID, eng)
		},
		EncounterCleared: func() {
			s.persist(p.ID, eng)
		},
		Resolution: func(o battle.ResolutionOutcome) {
			s.recordResolution(playerUUID, p.ID, host, eng, o)
		},
	}
	eng, err = battle.New(s.cfg, host, s.sched, rand.New(rand.NewSource(s.seed())), hooks)
	if err != nil {
		return nil, err
	}
	eng.SetTriggerAllowed(p.BattlesUnlocked)

	if blob, lerr := s.repo.LoadEngineState(p.ID); lerr == nil && len(blob) > 0 {
		if rerr := eng.Restore(blob); rerr != nil {
			logging.Error("battle session: snapshot restore failed", rerr, logging.Fields{
				"player_uuid": playerUUID,
			})
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.engines[playerUUID]; ok {
		// Another request built an engine first; drop ours.
		eng.Reset()
		return existing, nil
	}
	s.engines[playerUUID] = eng
	return eng, nil
}

// Engage forwards a player's engage request to their engine. Stale or
// unknown actor ids are a quiet no-op inside the engine, so the only
// failure mode here is an unknown player.
func (s *BattleSessions) Engage(playerUUID, actorID string) error {
	eng, err := s.EngineFor(playerUUID)
	if err != nil {
		return err
	}
	eng.Engage(actorID)
	return nil
}

// Shutdown persists and stops every live engine. Pending encounters
// survive through their snapshots.
func (s *BattleSessions) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for uuid, eng := range s.engines {
		s.persistByUUID(uuid, eng)
		eng.Reset()
	}
	s.engines = make(map[string]*battle.Engine)
}

func (s *BattleSessions) persist(playerID uint, eng *battle.Engine) {
	blob, err := eng.Snapshot()
	if err != nil {
		logging.Error("battle session: snapshot failed", err, nil)
		return
	}
	if err := s.repo.SaveEngineState(playerID, blob); err != nil {
		logging.Error("battle session: snapshot persist failed", err, nil)
	}
}

func (s *BattleSessions) persistByUUID(playerUUID string, eng *battle.Engine) {
	p, err := s.repo.GetPlayerByUUID(playerUUID)
	if err != nil {
		return
	}
	s.persist(p.ID, eng)
}

func (s *BattleSessions) recordResolution(playerUUID string, playerID uint, host *playerHost, eng *battle.Engine, o battle.ResolutionOutcome) {
	result := "defeat"
	if o.PlayerWon {
		result = string(o.WinType)
	}
	entry := &game.EncounterLog{
		PlayerID:         playerID,
		OccurredAt:       time.Now(),
		ActorClass:       string(o.OpponentClass),
		PlayerWon:        o.PlayerWon,
		ResultKind:       result,
		SnowballSnapshot: host.ResourceBalance(battle.ResourceSnowballs),
	}
	if err := s.repo.AppendEncounterLog(entry, s.cfg.LedgerLimit); err != nil {
		logging.Error("battle session: encounter log append failed", err, logging.Fields{
			"player_uuid": playerUUID,
		})
	}
	if o.PlayerWon {
		if p, err := s.repo.GetPlayerByUUID(playerUUID); err == nil {
			p.AbilityLevel = eng.AbilityLevel()
			if uerr := s.repo.UpdatePlayer(p); uerr != nil {
				logging.Error("battle session: ability level persist failed", uerr, logging.Fields{
					"player_uuid": playerUUID,
				})
			}
		}
	}
	s.persist(playerID, eng)
	logging.Info("encounter resolved", logging.Fields{
		"player_uuid": playerUUID,
		"class":       string(o.OpponentClass),
		"result":      result,
		"reward":      o.SnowballReward,
	})
}
