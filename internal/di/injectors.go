//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"fcd/internal"
	"fcd/internal/catalog"
	"fcd/internal/catalog/interfaces"
	"fcd/internal/controllers"
	"fcd/internal/providers"
	"fcd/internal/services"
	"fcd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewSessionProvider,
		providers.NewMetricsProvider,
		providers.NewIdentityProvider,
		providers.NewClock,
		providers.NewNotifier,

		catalog.NewZstdCompressor,
		catalog.NewFileManager,
		wire.Bind(new(interfaces.BlobStoreInterface), new(*catalog.FileManager)),
		catalog.NewBackupManager,
		services.NewCatalogService,
		services.NewAuthService,
		catalog.NewScheduler,
		controllers.NewApiController,
		controllers.NewAuthController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
