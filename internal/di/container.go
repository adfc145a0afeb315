package di

import (
	"reflect"

	"github.com/goliatone/go-catalog/internal/reconciler"
	"github.com/goliatone/go-catalog/internal/rest"
	"github.com/goliatone/go-catalog/pkg/catalog"
	"github.com/goliatone/go-catalog/pkg/commands"
	"github.com/goliatone/go-catalog/pkg/config"
	"github.com/goliatone/go-catalog/pkg/interfaces/cache"
	"github.com/goliatone/go-catalog/pkg/interfaces/logger"
	"github.com/goliatone/go-catalog/pkg/storage"
)

// Options configure the DI container.
type Options struct {
	Config  config.Config
	Storage storage.Providers
	Logger  logger.Logger
	Cache   cache.Cache
}

// Container wires repositories, the catalog service, the command registry,
// transport handlers, and the reconciler.
type Container struct {
	Config     config.Config
	Storage    storage.Providers
	Cache      cache.Cache
	Logger     logger.Logger
	Catalog    *catalog.Service
	Commands   *commands.Registry
	Handlers   *rest.Handlers
	Reconciler *reconciler.Reconciler
}

func isZeroConfig(cfg config.Config) bool {
	return reflect.ValueOf(cfg).IsZero()
}

// New constructs the container using the supplied options.
func New(opts Options) (*Container, error) {
	cfg := opts.Config
	if isZeroConfig(cfg) {
		cfg = config.Defaults()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	providers := opts.Storage
	if providers.Menus == nil {
		providers = storage.NewMemoryProviders()
	}

	lgr := opts.Logger
	if lgr == nil {
		lgr = &logger.Nop{}
	}

	c := opts.Cache
	if c == nil {
		c = &cache.Nop{}
	}

	svc, err := catalog.New(catalog.Dependencies{
		Store:    providers,
		Cache:    c,
		Logger:   lgr,
		CacheTTL: cfg.Cache.TTL,
	})
	if err != nil {
		return nil, err
	}

	registry, err := commands.New(commands.Dependencies{
		Service: svc,
		Cache:   c,
		Logger:  lgr,
	})
	if err != nil {
		return nil, err
	}

	container := &Container{
		Config:   cfg,
		Storage:  providers,
		Cache:    c,
		Logger:   lgr,
		Catalog:  svc,
		Commands: registry,
		Handlers: rest.New(svc, lgr),
	}

	if cfg.Reconciler.Enabled {
		container.Reconciler = reconciler.New(svc, reconciler.Config{
			SourcePath:  cfg.Reconciler.SourcePath,
			SheetName:   cfg.Reconciler.SheetName,
			Interval:    cfg.Reconciler.Interval,
			BackoffBase: cfg.Reconciler.BackoffBase,
			BackoffMax:  cfg.Reconciler.BackoffMax,
		}, lgr)
	}

	return container, nil
}
