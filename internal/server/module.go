package server

import (
	"github.com/touch-timeout/wakebridge/util/logging"
	"go.uber.org/fx"
)

func Module(config HttpConfig) fx.Option {
	return fx.Module("server",
		// scope the logger to this module
		logging.DecorateLogger("server"),
		// provide config
		fx.Supply(config),
		// provide server
		fx.Provide(NewLifecycleServer),
		// invoke server
		fx.Invoke(func(*HttpServer) {}),
	)
}
