package bootstrap

import (
	"agenda-espacos/internal/pkg/config"
	"agenda-espacos/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTReader,
	),
)

func NewJWTReader(cfg config.Config) *jwt.Reader {
	return jwt.NewReader(cfg.JWT.Secret)
}
