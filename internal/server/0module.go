package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"mutabaah.dev/backend/internal/constant"
	"mutabaah.dev/backend/internal/pkg/fiberstore"
	"mutabaah.dev/backend/internal/server/httpserver"
	"mutabaah.dev/backend/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups),
		fx.Provide(func(client *redis.Client) fiber.Storage {
			return fiberstore.NewRedis(client, constant.LimiterKeyPrefix)
		}))
}
