package storage

import (
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the sqlite database and keeps the schema
// updated via AutoMigrate. Assistant stats live in the config catalog,
// so only ownership and save data are persisted here.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(&game.Player{}, &game.Assistant{}, &game.EncounterLog{}, &game.EngineState{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
