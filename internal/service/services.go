package service

import (
	"github.com/MKhiriev/go-holocron/internal/config"
	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/internal/store"
)

type Services struct {
	UserService      UserService
	CatalogService   CatalogService
	FavoritesService FavoritesService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	favoritesService := NewFavoritesValidationService().Wrap(
		NewFavoritesService(storages.TxManager, storages.UserRepository, storages.CatalogRepository, storages.FavoriteRepository, logger),
	)

	return &Services{
		UserService:      NewUserService(storages.UserRepository, logger),
		CatalogService:   NewCatalogService(storages.CatalogRepository, logger),
		FavoritesService: favoritesService,
		AppInfoService:   appInfoService,
	}, nil
}
