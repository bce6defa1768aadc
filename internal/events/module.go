package events

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/lat08/web-eyewear-sub001/internal/config"
)

// Module provides the event publisher. Without brokers configured the
// publisher is a no-op and the service runs standalone.
var Module = fx.Options(
	fx.Provide(newPublisher),
	fx.Invoke(registerLifecycle),
)

type publisherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newPublisher(p publisherParams) Publisher {
	if len(p.Config.KafkaBrokers) == 0 {
		return NoopPublisher{}
	}
	return NewKafkaPublisher(p.Config.KafkaBrokers, p.Config.EventsTopic, 0, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, publisher Publisher) {
	drainCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			publisher.Start(drainCtx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			publisher.Close()
			return nil
		},
	})
}
