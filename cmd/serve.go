package cmd

import (
	"github.com/touch-timeout/wakebridge/app"
	"github.com/touch-timeout/wakebridge/internal/server"
	"github.com/urfave/cli/v2"
)

var (
	serveCmdDescription = `The serve command starts the http wake endpoint and blocks
	indefinitely, forwarding each wake request as an OS signal
	to the display-timeout daemon.

	The endpoint binds to the loopback interface only and must
	not be exposed beyond the host.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start the http wake endpoint.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The loopback address to listen on.",
				Value:    "127.0.0.1",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    8765,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
		},
	}
)

func serveAction(ctx *cli.Context) error {
	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	httpConfig := server.HttpConfig{
		Host: ctx.String("host"),
		Port: ctx.Int("port"),
		H2c:  ctx.Bool("h2c"),
	}

	return app.Run(ctx.Context, server.Module(httpConfig))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
