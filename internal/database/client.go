// Package database persists computed snapshots to the optional archive
// database (PostgreSQL via GORM).
package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/chandrakala/vedicclock/internal/log"
	"go.uber.org/zap"
)

// Client holds the connection to the archive database.
type Client struct {
	DB     *gorm.DB
	logger *zap.SugaredLogger
}

// NewClient creates an archive database client.
func NewClient(logger *zap.SugaredLogger) *Client {
	return &Client{logger: logger}
}

// Connect opens the GORM connection and runs migrations for the snapshot
// table.
func (c *Client) Connect(connectionString string) error {
	dbLogger := gormlogger.New(
		zap.NewStdLog(log.GetZapLogger()),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: false,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(connectionString), &gorm.Config{Logger: dbLogger})
	if err != nil {
		return fmt.Errorf("unable to connect to archive database: %w", err)
	}

	if err := db.AutoMigrate(&SnapshotRecord{}); err != nil {
		return fmt.Errorf("unable to migrate snapshot table: %w", err)
	}

	c.DB = db
	c.logger.Info("archive database connection successful")
	return nil
}

// Close closes the underlying connection pool.
func (c *Client) Close() error {
	if c.DB == nil {
		return nil
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
