//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"studynexus/internal"
	"studynexus/internal/controllers"
	"studynexus/internal/providers"
	"studynexus/internal/scheduling"
	"studynexus/internal/services"
	"studynexus/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewAIProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		services.NewAccountService,
		wire.Bind(new(providers.LedgerStatsSource), new(services.AccountServiceInterface)),

		scheduling.NewZstdCompressor,
		scheduling.NewStore,
		scheduling.NewScheduler,
		controllers.NewApiController,
		controllers.NewCommandController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
