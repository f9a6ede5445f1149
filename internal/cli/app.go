// Package cli wires the navstate command-line application.
package cli

import (
	"context"
	"fmt"

	"github.com/workbench/navstate/internal/application/usecase"
	"github.com/workbench/navstate/internal/cli/styles"
	"github.com/workbench/navstate/internal/domain/build"
	"github.com/workbench/navstate/internal/domain/repository"
	"github.com/workbench/navstate/internal/infrastructure/config"
	"github.com/workbench/navstate/internal/infrastructure/persistence/sqlite"
	"github.com/workbench/navstate/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// Storage is opened on first use, so inspect and build never touch it.
	db         *sqlite.LazyDB
	Bookmarks  repository.BookmarkRepository
	StateStore repository.NavigationStateRepository

	// Use cases
	DecodeUC       *usecase.DecodeBookmarkUseCase
	BookmarksUC    *usecase.ManageBookmarksUseCase
	SnapshotUC     *usecase.SnapshotNavigationUseCase
	RestoreUC      *usecase.RestoreNavigationUseCase
	ConfigSchemaUC *usecase.GetConfigSchemaUseCase

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration and builds every dependency.
// An empty configFile selects the XDG location.
func NewApp(configFile string) (*App, error) {
	mgr, err := config.NewManager(configFile)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithComponent(logging.WithContext(context.Background(), logger), "cli")
	logger.Debug().
		Str("config", mgr.GetConfigFile()).
		Str("db_path", cfg.Database.Path).
		Msg("configuration loaded")

	db := sqlite.NewLazyDB(cfg.Database.Path)
	bookmarks := sqlite.NewLazyBookmarkRepository(db)
	states := sqlite.NewLazyNavigationStateRepository(db)

	return &App{
		Config:         cfg,
		ConfigManager:  mgr,
		Theme:          styles.NewTheme(),
		db:             db,
		Bookmarks:      bookmarks,
		StateStore:     states,
		DecodeUC:       usecase.NewDecodeBookmarkUseCase(),
		BookmarksUC:    usecase.NewManageBookmarksUseCase(bookmarks),
		SnapshotUC:     usecase.NewSnapshotNavigationUseCase(states),
		RestoreUC:      usecase.NewRestoreNavigationUseCase(states),
		ConfigSchemaUC: usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		ctx:            ctx,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// DatabaseOpened reports whether a command touched storage.
func (a *App) DatabaseOpened() bool {
	return a.db != nil && a.db.IsInitialized()
}
