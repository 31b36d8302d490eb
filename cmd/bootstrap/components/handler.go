package components

import (
	"agenda-espacos/internal/handler"
	"agenda-espacos/internal/handler/api"
	"agenda-espacos/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewSpaceHandler,
		middleware.NewIdentityMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
