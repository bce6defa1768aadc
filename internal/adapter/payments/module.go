package payments

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/lat08/web-eyewear-sub001/internal/config"
)

// Module exposes the payment client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.PaymentSystemAddress, p.Logger)
}
