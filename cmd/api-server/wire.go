//go:build wireinject
// +build wireinject

package main

import (
	"network/config"
	"network/dao"
	"network/dao/cache"
	"network/handler"
	"network/pkg/client"
	"network/pkg/database"
	"network/pkg/server"
	"network/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		server.NewGinEngine,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Feed), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Follow), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
