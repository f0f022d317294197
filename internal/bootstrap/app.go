package bootstrap

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hbnb/internal/config"
	"hbnb/internal/model"
	mysqlClient "hbnb/internal/platform/mysql"
	"hbnb/internal/repository"
)

// Repositories bundles the storage layer handed to the facade. Both
// backends fill the same interfaces.
type Repositories struct {
	Users     repository.Repository[*model.User]
	Places    repository.Repository[*model.Place]
	Reviews   repository.Repository[*model.Review]
	Amenities repository.Repository[*model.Amenity]
	Links     repository.PlaceAmenityStore
}

type App struct {
	Config *config.Config
	DB     *gorm.DB // nil when the memory backend is selected
	Repos  *Repositories

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	app := &App{
		Config:    cfg,
		StartedAt: time.Now(),
	}

	switch cfg.Storage.Backend {
	case config.StorageMySQL:
		db, err := mysqlClient.New(ctx, cfg.MySQLDSN(), mysqlClient.PoolConfig{
			MaxIdleConns:    cfg.MySQL.MaxIdleConns,
			MaxOpenConns:    cfg.MySQL.MaxOpenConns,
			ConnMaxLifetime: time.Duration(cfg.MySQL.ConnMaxLifetimeMinute) * time.Minute,
			ConnMaxIdleTime: time.Duration(cfg.MySQL.ConnMaxIdleMinute) * time.Minute,
		})
		if err != nil {
			return nil, err
		}
		if err := db.AutoMigrate(
			&model.User{},
			&model.Place{},
			&model.Review{},
			&model.Amenity{},
			&model.PlaceAmenity{},
		); err != nil {
			return nil, fmt.Errorf("auto migrate tables failed: %w", err)
		}
		app.DB = db
		app.Repos = &Repositories{
			Users:     repository.NewGorm[model.User](db),
			Places:    repository.NewGorm[model.Place](db),
			Reviews:   repository.NewGorm[model.Review](db),
			Amenities: repository.NewGorm[model.Amenity](db),
			Links:     repository.NewGormPlaceAmenities(db),
		}
	default:
		app.Repos = &Repositories{
			Users:     repository.NewMemory[*model.User](),
			Places:    repository.NewMemory[*model.Place](),
			Reviews:   repository.NewMemory[*model.Review](),
			Amenities: repository.NewMemory[*model.Amenity](),
			Links:     repository.NewMemoryPlaceAmenities(),
		}
	}

	return app, nil
}

func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}
