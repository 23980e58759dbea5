package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/livrariapp/livraria-server/internal/entities"
)

// Database wraps the gorm connection and owns schema migration.
type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.Favorite{},
		&entities.Book{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// AutoMigrate creates the composite unique index on favoritos from the
	// struct tags. The books table needs the same pair to be unique only
	// among rows with favorito set, which gorm tags cannot express, so the
	// partial index is created directly.
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_tb_livros_device_book_fav ON tb_livros(device_id, google_books_id) WHERE favorito",
	).Error; err != nil {
		return nil, fmt.Errorf("failed to create favourite book index: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifies the underlying connection is still usable.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
