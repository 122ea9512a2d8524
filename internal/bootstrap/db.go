package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/schoolforge/sitebuilder-backend/config"
	authrepo "github.com/schoolforge/sitebuilder-backend/internal/auth/repository"
	authservice "github.com/schoolforge/sitebuilder-backend/internal/auth/service"
	componentrepo "github.com/schoolforge/sitebuilder-backend/internal/components/repository"
	componentservice "github.com/schoolforge/sitebuilder-backend/internal/components/service"
	configrepo "github.com/schoolforge/sitebuilder-backend/internal/configurations/repository"
	configservice "github.com/schoolforge/sitebuilder-backend/internal/configurations/service"
	projectrepo "github.com/schoolforge/sitebuilder-backend/internal/projects/repository"
	projectservice "github.com/schoolforge/sitebuilder-backend/internal/projects/service"
	"github.com/schoolforge/sitebuilder-backend/internal/storage/memory"
	"github.com/schoolforge/sitebuilder-backend/internal/storage/postgres"
)

// Stores holds one repository per domain. DB is nil for the memory backend.
type Stores struct {
	DB             *sql.DB
	Users          authservice.UserStore
	Projects       projectservice.Store
	Configurations configservice.Store
	Components     componentservice.Store
}

func (s *Stores) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// MemoryStores returns empty in-process stores.
func MemoryStores() *Stores {
	return &Stores{
		Users:          memory.NewUsers(),
		Projects:       memory.NewProjects(),
		Configurations: memory.NewConfigurations(),
		Components:     memory.NewComponents(),
	}
}

// OpenStores connects the configured backend. For postgres the schema is
// migrated first when AutoMigrate is set.
func OpenStores(ctx context.Context, cfg *config.DatabaseConfig, log zerolog.Logger) (*Stores, error) {
	switch cfg.Backend {
	case "memory":
		log.Warn().Msg("using in-memory storage; data is lost on restart")
		return MemoryStores(), nil
	case "postgres":
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	if cfg.AutoMigrate {
		applied, err := postgres.Migrate(ctx, postgres.DSN(cfg), log)
		if err != nil {
			return nil, fmt.Errorf("db migrate: %w", err)
		}
		log.Info().Int("applied", applied).Msg("database migrations complete")
	}

	db, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &Stores{
		DB:             db,
		Users:          authrepo.NewUserRepository(db),
		Projects:       projectrepo.NewProjectRepository(db),
		Configurations: configrepo.NewConfigurationRepository(db),
		Components:     componentrepo.NewComponentRepository(db),
	}, nil
}
