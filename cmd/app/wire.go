//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/closet-stylist/internal/bootstrap"
	"github.com/yanqian/closet-stylist/internal/domain/auth"
	"github.com/yanqian/closet-stylist/internal/domain/closet"
	"github.com/yanqian/closet-stylist/internal/domain/outfit"
	"github.com/yanqian/closet-stylist/internal/infra/config"
	httpiface "github.com/yanqian/closet-stylist/internal/interface/http"
	"github.com/yanqian/closet-stylist/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAuthConfig,
		provideClosetConfig,
		provideOutfitConfig,
		providePostgresPool,
		provideAuthRepository,
		provideGarmentRepository,
		provideProfileRepository,
		provideOutfitStore,
		providePhotoStorage,
		provideColorExtractor,
		outfit.NewService,
		auth.NewService,
		closet.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
