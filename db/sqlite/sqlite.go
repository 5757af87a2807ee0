package sqlite

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fueldelivery/models"
)

// SQLiteDB is the embedded single-file store. Ctx bounds Connect.
type SQLiteDB struct {
	Conn   *gorm.DB
	Ctx    context.Context
	Cancel context.CancelFunc
	Path   string
}

func NewSQLiteDB(path string) *SQLiteDB {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	return &SQLiteDB{Ctx: ctx, Cancel: cancel, Path: path}
}

func (s *SQLiteDB) Connect() error {
	if s.Path == "" {
		return errors.Wrap(models.ErrConfigMissing, "SQLITE_PATH is empty")
	}
	conn, err := gorm.Open(sqlite.Open(s.Path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return models.StoreError("open sqlite", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return models.StoreError("open sqlite", err)
	}
	if err := sqlDB.PingContext(s.Ctx); err != nil {
		sqlDB.Close()
		return models.StoreError("ping sqlite", err)
	}
	s.Conn = conn
	return nil
}

func (s *SQLiteDB) Disconnect() error {
	s.Cancel()
	if s.Conn == nil {
		return nil
	}
	sqlDB, err := s.Conn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
