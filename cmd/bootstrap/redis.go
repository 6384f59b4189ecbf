package bootstrap

import (
	"context"

	infraredis "sneakdrop/internal/infra/redis"
	"sneakdrop/internal/pkg/config"
	"sneakdrop/internal/usecase/commands"
	"sneakdrop/internal/usecase/queries"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			infraredis.NewCountCache,
			fx.As(new(queries.CountCache)),
			fx.As(new(commands.CountInvalidator)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (goredis.Cmdable, error) {
	client, cleanup, err := infraredis.NewClient(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}
