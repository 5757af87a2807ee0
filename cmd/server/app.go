package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"fueldelivery/cache"
	"fueldelivery/config"
	"fueldelivery/db"
	"fueldelivery/db/mongo"
	"fueldelivery/db/postgres"
	"fueldelivery/db/sheets"
	"fueldelivery/db/sqlite"
	"fueldelivery/models"
	"fueldelivery/repository"
)

// stores is every repository the commands need, opened for one backend.
type stores struct {
	Orders    repository.OrderRepository
	Company   repository.CompanyRepository
	Assets    repository.AssetRepository
	Operators repository.OperatorRepository

	closers []func() error
}

// Backends opened by openStores.
var (
	_ db.DB = (*postgres.PostgresDB)(nil)
	_ db.DB = (*mongo.MongoDB)(nil)
	_ db.DB = (*sheets.SheetsDB)(nil)
	_ db.DB = (*sqlite.SQLiteDB)(nil)
)

// connect opens conn and closes it with the other stores.
func (s *stores) connect(conn db.DB) error {
	if err := conn.Connect(); err != nil {
		return err
	}
	s.closers = append(s.closers, conn.Disconnect)
	return nil
}

func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			log.Warn().Err(err).Msg("close failed")
		}
	}
}

// openStores picks the backend from DB_TYPE. A spreadsheet backend that is
// not configured still yields stores: order calls fail with ErrConfigMissing
// while settings keep working.
func openStores(cfg *config.Config, runMigrations bool) (*stores, error) {
	dbType, ok := db.ParseDBType(cfg.DBType)
	if !ok {
		return nil, errors.Errorf("DB_TYPE %q not supported", cfg.DBType)
	}

	s := &stores{
		Company:   repository.NewFileCompanyRepo(cfg.CompanyFile),
		Assets:    repository.NewFileAssetRepo(cfg.AssetsDir),
		Operators: repository.StaticOperatorRepo{Username: cfg.Auth.Username, PasswordHash: cfg.Auth.PasswordHash},
	}

	var mirror repository.TableStore
	if cfg.XLSX.MirrorPath != "" {
		mirror = repository.NewXLSXTableStore(cfg.XLSX.MirrorPath, cfg.XLSX.Sheet)
	}

	switch dbType {
	case db.Sheets:
		orders, err := openSheets(cfg, mirror, s)
		if err != nil {
			if !errors.Is(err, models.ErrConfigMissing) {
				return nil, err
			}
			log.Error().Err(err).Msg("order store not configured, order pages will report it")
			orders = repository.UnavailableOrderRepo{Err: err}
		}
		s.Orders = orders

	case db.XLSX:
		s.Orders = repository.NewSnapshotOrderRepo(repository.NewXLSXTableStore(cfg.XLSX.Path, cfg.XLSX.Sheet), nil)

	case db.Postgres:
		if runMigrations {
			if err := db.RunMigrations(cfg.PostgresURL, cfg.MigrationsDir); err != nil {
				return nil, err
			}
		}
		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := s.connect(pg); err != nil {
			return nil, err
		}
		s.Orders = repository.NewPostgresOrderRepo(pg.Conn)
		s.Company = repository.NewPostgresCompanyRepo(pg.Conn)
		s.Operators = repository.NewPostgresOperatorRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL, cfg.MongoDatabase)
		if err := s.connect(mg); err != nil {
			return nil, err
		}
		s.Orders = repository.NewMongoOrderRepo(mg.Client, cfg.MongoDatabase)
		s.Company = repository.NewMongoCompanyRepo(mg.Client, cfg.MongoDatabase)
		s.Operators = repository.NewMongoOperatorRepo(mg.Client, cfg.MongoDatabase)

	case db.SQLite:
		lite := sqlite.NewSQLiteDB(cfg.SQLitePath)
		if err := s.connect(lite); err != nil {
			return nil, err
		}
		orders, err := repository.NewGormOrderRepo(lite.Conn)
		if err != nil {
			return nil, err
		}
		s.Orders = orders
	}

	s.Orders = withCache(cfg, s.Orders, s)
	log.Info().Str("db_type", string(dbType)).Str("cache", cfg.Cache.Driver).Msg("order store ready")
	return s, nil
}

func openSheets(cfg *config.Config, mirror repository.TableStore, s *stores) (repository.OrderRepository, error) {
	if !cfg.Sheets.Configured() {
		return nil, errors.Wrap(models.ErrConfigMissing, "SHEETS_SPREADSHEET_URL and sheet credentials are required")
	}
	id, err := repository.ParseSpreadsheetID(cfg.Sheets.SpreadsheetURL)
	if err != nil {
		return nil, err
	}
	sh := sheets.NewSheetsDB(cfg.Sheets.CredentialsFile, cfg.Sheets.CredentialsJSON)
	if err := s.connect(sh); err != nil {
		return nil, err
	}
	store := repository.NewSheetsTableStore(sh.Service, id, cfg.Sheets.Worksheet)
	return repository.NewSnapshotOrderRepo(store, mirror), nil
}

func withCache(cfg *config.Config, orders repository.OrderRepository, s *stores) repository.OrderRepository {
	switch cfg.Cache.Driver {
	case "none", "":
		return orders
	case "redis":
		rc, err := cache.NewRedisCache(cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize Redis cache, using in-memory cache")
			return repository.NewCachedOrderRepo(orders, cache.NewMemoryCache(), cfg.Cache.TTL)
		}
		s.closers = append(s.closers, rc.Close)
		return repository.NewCachedOrderRepo(orders, rc, cfg.Cache.TTL)
	default:
		return repository.NewCachedOrderRepo(orders, cache.NewMemoryCache(), cfg.Cache.TTL)
	}
}

// checkOrders logs whether the order store answers; the server starts either way.
func checkOrders(ctx context.Context, orders repository.OrderRepository) {
	rows, err := orders.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("order store unavailable at startup")
		return
	}
	log.Info().Int("rows", len(rows)).Msg("order table loaded")
}
