// Command userstore exercises the persisted user entity end to end: it
// opens the database from the validated configuration, migrates the users
// table, inserts a record that passed schema validation, reads it back
// through the cache, and applies a partial update.
package main

import (
	"context"
	stdlog "log"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/EstebanCesp/Tarea1-Programacion-Software/internal/core/cache"
	"github.com/EstebanCesp/Tarea1-Programacion-Software/internal/core/config"
	"github.com/EstebanCesp/Tarea1-Programacion-Software/internal/core/database"
	"github.com/EstebanCesp/Tarea1-Programacion-Software/internal/core/logger"
	"github.com/EstebanCesp/Tarea1-Programacion-Software/internal/domain"
	"github.com/EstebanCesp/Tarea1-Programacion-Software/internal/repo"
	"github.com/EstebanCesp/Tarea1-Programacion-Software/internal/schema"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	var users domain.UserRepository = repo.NewUserRepo(db)
	if cfg.Redis.Addr != "" {
		c := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer c.Close()
		users = repo.NewCachedUserRepo(users, c, 5*time.Minute)
		log.Info("user cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	ctx := context.Background()

	rec, err := schema.NewUser(0, "  juan carlos  ", "juan@ejemplo.com", "+1 (555) 123-4567")
	if err != nil {
		log.Fatal("user rejected", zap.Error(err))
	}
	row := domain.UserFromSchema(rec)
	if err := users.Create(ctx, row); err != nil {
		log.Fatal("insert failed", zap.Error(err))
	}
	// Timestamps come from the storage layer, not from us.
	log.Info("user inserted",
		zap.Int64("id", row.ID),
		zap.String("name", row.Name),
		zap.Time("created_at", row.CreatedAt),
	)

	got, err := users.FindByID(ctx, row.ID) // first read fills the cache
	if err != nil {
		log.Fatal("lookup failed", zap.Error(err))
	}
	if got == nil {
		log.Fatal("inserted user not found", zap.Int64("id", row.ID))
	}
	log.Info("user fetched", zap.Any("record", got.Schema().Map()))

	name := "maría elena"
	up := &schema.UserUpdate{Name: &name}
	if err := up.Validate(); err != nil {
		log.Fatal("update rejected", zap.Error(err))
	}
	updated, err := users.UpdatePartial(ctx, row.ID, up)
	if err != nil {
		log.Fatal("update failed", zap.Error(err))
	}
	log.Info("user updated",
		zap.String("name", updated.Name),
		zap.Time("updated_at", updated.UpdatedAt),
	)

	list, total, err := users.List(ctx, 0, 10)
	if err != nil {
		log.Fatal("list failed", zap.Error(err))
	}
	log.Info("users listed", zap.Int64("total", total), zap.Int("page", len(list)))
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.App.DatabaseURL,
		MaxOpenConns:       cfg.App.MaxConnections,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	}, l)
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
