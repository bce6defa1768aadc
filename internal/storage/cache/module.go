package cache

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/lat08/web-eyewear-sub001/internal/config"
	"github.com/lat08/web-eyewear-sub001/internal/domain/repository"
)

// Module layers the redis read-through cache over the product repository
// when a redis address is configured.
var Module = fx.Options(
	fx.Decorate(decorateProducts),
)

func decorateProducts(source repository.ProductRepository, cfg *config.Config, logger *slog.Logger) repository.ProductRepository {
	if cfg.RedisAddr == "" {
		return source
	}
	return NewProductCache(source, NewClient(cfg.RedisAddr), cfg.CacheTTL, logger)
}
