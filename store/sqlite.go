package store

import (
	"errors"

	"agencybuilder/coach/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Record is the single table backing the key-value store: one row per key,
// value is the raw JSON document.
type Record struct {
	Key   string `gorm:"primaryKey"`
	Value []byte
}

type SQLite struct {
	db *gorm.DB
}

var Client KV

// Init opens (or creates) the sqlite database and installs it as the
// package-level client used by the handlers.
func Init() {
	path := config.Getenv("COACH_DB_PATH", "coach.db")

	client, err := OpenSQLite(path)
	if err != nil {
		config.Logger.Fatal("Failed to open store:", err)
	}
	Client = client
}

func OpenSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(key string) ([]byte, bool, error) {
	var rec Record
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec.Value, true, nil
}

func (s *SQLite) Set(key string, value []byte) error {
	rec := Record{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}

func (s *SQLite) Delete(key string) error {
	return s.db.Delete(&Record{}, "key = ?", key).Error
}
