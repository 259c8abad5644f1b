//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/carbon-planner/internal/bootstrap"
	"github.com/yanqian/carbon-planner/internal/domain/activity"
	"github.com/yanqian/carbon-planner/internal/domain/catalog"
	"github.com/yanqian/carbon-planner/internal/domain/planner"
	"github.com/yanqian/carbon-planner/internal/domain/quickwins"
	"github.com/yanqian/carbon-planner/internal/infra/config"
	httpiface "github.com/yanqian/carbon-planner/internal/interface/http"
	"github.com/yanqian/carbon-planner/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		providePlannerConfig,
		provideOptimizerConfig,
		providePgxPool,
		provideCatalogRepository,
		providePlanRepository,
		provideTrendStore,
		catalog.NewService,
		planner.NewService,
		quickwins.NewService,
		activity.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
