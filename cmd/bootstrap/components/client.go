package components

import (
	"agenda-espacos/internal/infra/backend"
	"agenda-espacos/internal/pkg/config"
	"agenda-espacos/internal/usecase/queries"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("client",
	fx.Provide(
		func(cfg config.Config) config.BackendConfig { return cfg.Backend },
		fx.Annotate(
			backend.NewClient,
			fx.As(new(queries.Backend)),
		),
	),
)
