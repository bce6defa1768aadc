package router

import (
	"go.uber.org/fx"

	"github.com/lat08/web-eyewear-sub001/internal/app"
	"github.com/lat08/web-eyewear-sub001/internal/server/http/handlers"
	"github.com/lat08/web-eyewear-sub001/internal/server/http/middleware"
	"github.com/lat08/web-eyewear-sub001/internal/storage/postgres"
)

// Module registers HTTP router construction for the fx runtime.
var Module = fx.Provide(
	func(f *app.StorefrontFacade) handlers.StorefrontFacade { return f },
	func(f *app.StorefrontFacade) middleware.TokenParser { return f },
	func(s *postgres.Storage) Pinger { return s },
	Setup,
)
