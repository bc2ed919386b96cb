// Package wire provides dependency injection for the poochyard
// application. It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/example/poochyard/internal/adapters/postgres"
	"github.com/example/poochyard/internal/adapters/sqlite"
	"github.com/example/poochyard/internal/app"
	"github.com/example/poochyard/internal/config"
	"github.com/example/poochyard/internal/db"
	"github.com/example/poochyard/internal/ports/primary"
	"github.com/example/poochyard/internal/ports/secondary"
)

var (
	cfg              *config.Config
	logger           *slog.Logger
	serverService    primary.ServerService
	ownerService     primary.OwnerService
	poochService     primary.PoochService
	familyService    primary.FamilyService
	kennelService    primary.KennelService
	vendorService    primary.VendorService
	lifecycleService primary.LifecycleService
	once             sync.Once
)

// Configuration returns the loaded configuration.
func Configuration() *config.Config {
	once.Do(initServices)
	return cfg
}

// Logger returns the shared structured logger.
func Logger() *slog.Logger {
	once.Do(initServices)
	return logger
}

// ServerService returns the singleton ServerService instance.
func ServerService() primary.ServerService {
	once.Do(initServices)
	return serverService
}

// OwnerService returns the singleton OwnerService instance.
func OwnerService() primary.OwnerService {
	once.Do(initServices)
	return ownerService
}

// PoochService returns the singleton PoochService instance.
func PoochService() primary.PoochService {
	once.Do(initServices)
	return poochService
}

// FamilyService returns the singleton FamilyService instance.
func FamilyService() primary.FamilyService {
	once.Do(initServices)
	return familyService
}

// KennelService returns the singleton KennelService instance.
func KennelService() primary.KennelService {
	once.Do(initServices)
	return kennelService
}

// VendorService returns the singleton VendorService instance.
func VendorService() primary.VendorService {
	once.Do(initServices)
	return vendorService
}

// LifecycleService returns the singleton LifecycleService instance.
func LifecycleService() primary.LifecycleService {
	once.Do(initServices)
	return lifecycleService
}

// repos bundles one driver's repository set.
type repos struct {
	servers     secondary.ServerRepository
	owners      secondary.OwnerRepository
	pooches     secondary.PoochRepository
	kennels     secondary.KennelRepository
	parentage   secondary.ParentageRepository
	pregnancies secondary.PregnancyRepository
	vendors     secondary.VendorRepository
	graveyards  secondary.GraveyardRepository
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}
	cfg, err = config.Load(cwd)
	if err != nil {
		cfg = config.Default()
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	database, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	r := buildRepos(cfg.Driver, database)

	serverService = app.NewServerService(r.servers)
	ownerService = app.NewOwnerService(r.owners, r.servers, r.graveyards)
	poochService = app.NewPoochService(r.pooches, r.parentage, r.pregnancies)
	familyService = app.NewFamilyService(r.pooches, r.parentage)
	kennelService = app.NewKennelService(r.kennels, r.pooches, r.owners)
	vendorService = app.NewVendorService(r.vendors, r.pooches, r.owners)
	lifecycleService = app.NewLifecycleService(
		r.servers, r.owners, r.pooches, r.pregnancies, r.kennels, r.vendors, r.graveyards, logger)
}

func openDatabase(cfg *config.Config) (*sql.DB, error) {
	if cfg.Driver == config.DriverPostgres {
		return db.OpenPostgres(cfg.PostgresDSN)
	}
	return db.OpenSQLite(cfg.DatabasePath)
}

func buildRepos(driver string, database *sql.DB) repos {
	if driver == config.DriverPostgres {
		return repos{
			servers:     postgres.NewServerRepository(database),
			owners:      postgres.NewOwnerRepository(database),
			pooches:     postgres.NewPoochRepository(database),
			kennels:     postgres.NewKennelRepository(database),
			parentage:   postgres.NewParentageRepository(database),
			pregnancies: postgres.NewPregnancyRepository(database),
			vendors:     postgres.NewVendorRepository(database),
			graveyards:  postgres.NewGraveyardRepository(database),
		}
	}
	return repos{
		servers:     sqlite.NewServerRepository(database),
		owners:      sqlite.NewOwnerRepository(database),
		pooches:     sqlite.NewPoochRepository(database),
		kennels:     sqlite.NewKennelRepository(database),
		parentage:   sqlite.NewParentageRepository(database),
		pregnancies: sqlite.NewPregnancyRepository(database),
		vendors:     sqlite.NewVendorRepository(database),
		graveyards:  sqlite.NewGraveyardRepository(database),
	}
}
