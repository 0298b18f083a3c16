package app

import (
	"github.com/touch-timeout/wakebridge/config"
	"github.com/touch-timeout/wakebridge/internal/shell"
	"github.com/touch-timeout/wakebridge/internal/wake"
	"github.com/touch-timeout/wakebridge/util/conf"
	"github.com/touch-timeout/wakebridge/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

func New(ctx *cli.Context) (*shell.Shell, error) {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return nil, err
	}

	config, err := conf.GetConfigFromContext[config.Config](ctx.Context)
	if err != nil {
		return nil, err
	}

	sharedModule := fx.Module(
		"shared",
		// provide global config
		fx.Supply(config),
		// provide wake config
		fx.Supply(config.Wake),
		// provide deliverer, handler and route
		wake.Module(),
	)

	return shell.New(log, sharedModule), nil
}
