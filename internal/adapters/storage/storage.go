package storage

import (
	"context"
	"errors"
	"fmt"

	"bird-service/internal/adapters/storage/cached"
	"bird-service/internal/adapters/storage/instrumented"
	mem "bird-service/internal/adapters/storage/memory"
	mdb "bird-service/internal/adapters/storage/mongodb"
	pg "bird-service/internal/adapters/storage/postgres"
	lite "bird-service/internal/adapters/storage/sqlite"
	"bird-service/internal/config"
	"bird-service/internal/domain/birds"
)

var ErrUnknownDriver = errors.New("unknown storage driver")

// Store es el repo listo para usar más su cierre.
type Store struct {
	Repo   birds.Repository
	Driver string

	close func(context.Context) error
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Open conecta el driver configurado y arma la cadena de decorators:
// driver -> instrumented (si hay recorder) -> cached (si CacheTTL > 0).
func Open(ctx context.Context, cfg config.Config, recorder instrumented.Recorder) (*Store, error) {
	s, err := openDriver(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	if recorder != nil {
		s.Repo = instrumented.NewBirdsRepo(s.Repo, s.Driver, recorder)
	}
	if cfg.CacheTTL > 0 {
		s.Repo = cached.NewBirdsRepo(s.Repo, cfg.CacheTTL)
	}
	return s, nil
}

func openDriver(ctx context.Context, cfg config.StorageConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return &Store{Repo: mem.NewBirdRepo(), Driver: config.DriverMemory}, nil

	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return &Store{
			Repo:   pg.NewBirdsRepo(db),
			Driver: config.DriverPostgres,
			close:  func(context.Context) error { return db.Close() },
		}, nil

	case config.DriverSQLite:
		db, err := lite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Store{
			Repo:   lite.NewBirdsRepo(db),
			Driver: config.DriverSQLite,
			close:  func(context.Context) error { return db.Close() },
		}, nil

	case config.DriverMongo:
		client, err := mdb.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		coll := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
		return &Store{
			Repo:   mdb.NewBirdsRepo(coll),
			Driver: config.DriverMongo,
			close:  client.Disconnect,
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Migrate prepara el storage configurado (tabla SQL o colección Mongo).
// Para memory no hay nada que hacer.
func Migrate(ctx context.Context, cfg config.StorageConfig) error {
	switch cfg.Driver {
	case config.DriverMemory, "":
		return nil

	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		return pg.Migrate(ctx, db)

	case config.DriverSQLite:
		// Open ya aplica el schema
		db, err := lite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return err
		}
		return db.Close()

	case config.DriverMongo:
		client, err := mdb.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		return mdb.Migrate(ctx, client.Database(cfg.MongoDatabase), cfg.MongoCollection)

	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
