package bootstrap

import (
	"agenda-espacos/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	SchedModule,
	components.ClientModule,
	components.UseCaseModule,
	components.HandlerModule,
)
