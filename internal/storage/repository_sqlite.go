package storage

import (
	"errors"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreatePlayer(p *game.Player) error {
	return r.db.Create(p).Error
}

func (r *sqliteRepository) GetPlayerByUUID(uuid string) (*game.Player, error) {
	var p game.Player
	if err := r.db.Preload("Assistants").Where("player_uuid = ?", uuid).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) UpdatePlayer(p *game.Player) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
}

func (r *sqliteRepository) AddAssistant(a *game.Assistant) error {
	return r.db.Create(a).Error
}

func (r *sqliteRepository) RemoveAssistantByUUID(playerID uint, assistantUUID string) (bool, error) {
	res := r.db.Where("player_id = ? AND assistant_uuid = ?", playerID, assistantUUID).Delete(&game.Assistant{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *sqliteRepository) ListAssistants(playerID uint) ([]game.Assistant, error) {
	var out []game.Assistant
	if err := r.db.Where("player_id = ?", playerID).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sqliteRepository) AppendEncounterLog(entry *game.EncounterLog, limit int) error {
	if err := r.db.Create(entry).Error; err != nil {
		return err
	}
	if limit <= 0 {
		return nil
	}
	// Trim anything older than the newest `limit` rows for the player.
	sub := r.db.Model(&game.EncounterLog{}).
		Select("id").
		Where("player_id = ?", entry.PlayerID).
		Order("id DESC").
		Limit(limit)
	return r.db.Where("player_id = ? AND id NOT IN (?)", entry.PlayerID, sub).
		Delete(&game.EncounterLog{}).Error
}

func (r *sqliteRepository) ListEncounterLog(playerID uint, limit int) ([]game.EncounterLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []game.EncounterLog
	if err := r.db.Where("player_id = ?", playerID).Order("id DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *sqliteRepository) SaveEngineState(playerID uint, blob []byte) error {
	var st game.EngineState
	err := r.db.Where("player_id = ?", playerID).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		st = game.EngineState{PlayerID: playerID, Blob: blob}
		return r.db.Create(&st).Error
	}
	if err != nil {
		return err
	}
	st.Blob = blob
	return r.db.Save(&st).Error
}

func (r *sqliteRepository) LoadEngineState(playerID uint) ([]byte, error) {
	var st game.EngineState
	err := r.db.Where("player_id = ?", playerID).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return st.Blob, nil
}

// GetTopPlayers returns the top N players ordered by snowball balance.
func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.Player, error) {
	if limit <= 0 {
		limit = 10
	}
	var players []game.Player
	if err := r.db.Model(&game.Player{}).
		Order("snowballs DESC").
		Limit(limit).
		Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}
