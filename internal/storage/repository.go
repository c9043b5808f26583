package storage

import (
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/game"
)

type Repository interface {
	CreatePlayer(p *game.Player) error
	GetPlayerByUUID(uuid string) (*game.Player, error)
	UpdatePlayer(p *game.Player) error

	AddAssistant(a *game.Assistant) error
	// RemoveAssistantByUUID deletes one owned instance and reports
	// whether a row existed.
	RemoveAssistantByUUID(playerID uint, assistantUUID string) (bool, error)
	ListAssistants(playerID uint) ([]game.Assistant, error)

	// AppendEncounterLog inserts a row and trims the player's history
	// to the newest `limit` rows, mirroring the in-memory ledger bound.
	AppendEncounterLog(entry *game.EncounterLog, limit int) error
	ListEncounterLog(playerID uint, limit int) ([]game.EncounterLog, error)

	SaveEngineState(playerID uint, blob []byte) error
	// LoadEngineState returns nil with no error when no snapshot has
	// been saved yet.
	LoadEngineState(playerID uint) ([]byte, error)

	// Leaderboard
	GetTopPlayers(limit int) ([]game.Player, error)
}
