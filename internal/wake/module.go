package wake

import (
	"github.com/touch-timeout/wakebridge/internal/server"
	"github.com/touch-timeout/wakebridge/util/logging"
	"go.uber.org/fx"
)

// NewWakeRoute registers the handler at the root, so that unknown
// paths reach its 404 response instead of the mux default.
func NewWakeRoute(handler *Handler) server.HttpHandlerResult {
	return server.AsHttpHandler("/", handler)
}

func Module() fx.Option {
	return fx.Module("wake",
		// scope the logger to this module
		logging.DecorateLogger("wake"),
		// provide deliverer
		fx.Provide(NewDeliverer),
		// provide handler
		fx.Provide(NewHandler),
		// provide route
		fx.Provide(NewWakeRoute),
	)
}
