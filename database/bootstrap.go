// database/bootstrap.go
package database

import (
	"context"
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"churnpredict/entities"
)

// Mongo owns the process-wide client; close it once at shutdown.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

func OpenMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &Mongo{Client: client, DB: client.Database(dbName)}, nil
}

func (m *Mongo) Ping(ctx context.Context) error { return m.Client.Ping(ctx, nil) }

func (m *Mongo) Close(ctx context.Context) error { return m.Client.Disconnect(ctx) }

// SQLite is the embedded store used for local runs and tests.
type SQLite struct {
	DB *gorm.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.AutoMigrate(
		&entities.EntityRecord{},
		&entities.DocumentRecord{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return &SQLite{DB: db}, nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return fmt.Errorf("db.DB(): %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (s *SQLite) Close(context.Context) error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
