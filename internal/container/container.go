package container

import (
	"fmt"

	"propfilter/adapters/excel"
	"propfilter/app"
	"propfilter/internal/config"
	"propfilter/internal/dataset"
	"propfilter/internal/errors"
)

// Container holds the application dependencies shared by the servers
type Container struct {
	Config *config.Config

	Loader  *excel.SourceLoader
	Store   *dataset.Store
	Service *app.ProjectService
}

// New wires the loader, table store and project service from cfg
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	loader := excel.NewSourceLoader(cfg.Data.SourceSheet)
	store, err := dataset.NewStore(cfg.Cache.Size, loader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create table store")
	}
	collator, err := app.NewCollator(cfg.Data.Collation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create option collator")
	}

	return &Container{
		Config:  cfg,
		Loader:  loader,
		Store:   store,
		Service: app.NewProjectService(store, cfg.Data.SourceFile, collator),
	}, nil
}
