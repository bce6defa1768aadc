package di

import (
	"go.uber.org/fx"

	"github.com/lat08/web-eyewear-sub001/internal/adapter/payments"
	"github.com/lat08/web-eyewear-sub001/internal/app"
	"github.com/lat08/web-eyewear-sub001/internal/config"
	"github.com/lat08/web-eyewear-sub001/internal/events"
	"github.com/lat08/web-eyewear-sub001/internal/logger"
	"github.com/lat08/web-eyewear-sub001/internal/pkg/auth"
	"github.com/lat08/web-eyewear-sub001/internal/server/http/router"
	"github.com/lat08/web-eyewear-sub001/internal/storage/cache"
	"github.com/lat08/web-eyewear-sub001/internal/storage/postgres"
	"github.com/lat08/web-eyewear-sub001/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		cache.Module,
		payments.Module,
		events.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
