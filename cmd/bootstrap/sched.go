package bootstrap

import (
	"context"

	"agenda-espacos/internal/pkg/clock"
	"agenda-espacos/internal/pkg/config"
	"agenda-espacos/internal/pkg/sched"

	"go.uber.org/fx"
)

var SchedModule = fx.Module("sched",
	fx.Provide(
		NewTickSource,
	),
)

// NewTickSource wires the shared tick source into the app lifecycle.
// Its resolution follows the fastest consumer, the status re-derive.
func NewTickSource(lc fx.Lifecycle, clk clock.Clock, cfg config.Config) *sched.Source {
	source := sched.NewSource(clk, cfg.Stream.RederiveEvery)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			source.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			source.Stop()
			return nil
		},
	})

	return source
}
