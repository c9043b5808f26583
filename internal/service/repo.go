package service

import (
	"errors"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/game"
)

var (
	ErrPlayerNotFound       = errors.New("player not found")
	ErrUnknownAssistantKind = errors.New("unknown assistant kind")
	ErrNotEnoughSnowballs   = errors.New("not enough snowballs")
)

// PlayerRepo is the slice of the storage repository the service layer
// depends on. Tests implement it with small hand-written mocks.
type PlayerRepo interface {
	GetPlayerByUUID(uuid string) (*game.Player, error)
	UpdatePlayer(p *game.Player) error
	AddAssistant(a *game.Assistant) error
	RemoveAssistantByUUID(playerID uint, assistantUUID string) (bool, error)
	ListAssistants(playerID uint) ([]game.Assistant, error)
	AppendEncounterLog(entry *game.EncounterLog, limit int) error
	SaveEngineState(playerID uint, blob []byte) error
	LoadEngineState(playerID uint) ([]byte, error)
}

// Catalog indexes the configured assistant kinds by key.
type Catalog map[string]game.AssistantKind

func NewCatalog(kinds []game.AssistantKind) Catalog {
	c := make(Catalog, len(kinds))
	for _, k := range kinds {
		c[k.Key] = k
	}
	return c
}
