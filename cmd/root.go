package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/touch-timeout/wakebridge/config"
	"github.com/touch-timeout/wakebridge/internal/shell"
	"github.com/touch-timeout/wakebridge/util/conf"
	"github.com/touch-timeout/wakebridge/util/logging"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var (
	appName  = "wakebridge"
	appUsage = `A loopback HTTP-to-signal bridge. Accepts a wake request over
HTTP and forwards it as an OS signal to the display-timeout
daemon, so containerized services can wake the display without
host privileges.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Args:            true,
		Flags: []cli.Flag{
			// general flags
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.PathFlag{
				Name:    "config",
				Usage:   "load configuration from a json or dotenv file.",
				EnvVars: []string{"WAKE_CONFIG_FILE"},
			},
			// wake flags
			&cli.StringFlag{
				Name:     "target",
				Usage:    "the process name the wake signal is delivered to.",
				Aliases:  []string{"t"},
				Value:    "touch-timeout",
				Category: "wake",
				EnvVars:  []string{"WAKE_TARGET"},
			},
			&cli.StringFlag{
				Name:     "signal",
				Usage:    "the signal to deliver to the target process.",
				Aliases:  []string{"s"},
				Value:    "SIGUSR1",
				Category: "wake",
				EnvVars:  []string{"WAKE_SIGNAL"},
			},
			&cli.StringFlag{
				Name:     "deliverer",
				Usage:    "the signal delivery mechanism. Options: pkill, direct.",
				Value:    "pkill",
				Category: "wake",
				EnvVars:  []string{"WAKE_DELIVERER"},
			},
			&cli.StringFlag{
				Name:     "pkill-path",
				Usage:    "the pkill binary used by the pkill deliverer.",
				Value:    "pkill",
				Category: "wake",
				EnvVars:  []string{"WAKE_PKILL_PATH"},
			},
			&cli.DurationFlag{
				Name:     "timeout",
				Usage:    "the wall-clock bound on a single delivery attempt.",
				Value:    10 * time.Second,
				Category: "wake",
				EnvVars:  []string{"WAKE_TIMEOUT"},
			},
		},
		Before: func(ctx *cli.Context) error {
			// create the logger
			log, err := createLogger(ctx)
			if err != nil {
				return err
			}

			// inject logger into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)

			// parse config using defaults, file, env and cli flags
			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli:      ctx,
				CliMap:   cliConfigMap,
				Defaults: config.DefaultConfig,
				FileName: ctx.Path("config"),
				Log:      log,
			})
			if err != nil {
				return err
			}

			// inject the config into the cli context
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			log, err := logging.LoggerFromContext(ctx.Context)
			if err != nil {
				return err
			}

			log.Sync()

			return nil
		},
	}

	// cliConfigMap maps cli flag names to nested config keys
	cliConfigMap = map[string]string{
		"target":     "wake.target",
		"signal":     "wake.signal",
		"deliverer":  "wake.deliverer",
		"pkill-path": "wake.pkill_path",
		"timeout":    "wake.timeout",
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

func Execute(params ExecuteParams) {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	run(context.Background(), os.Args)
}

func run(ctx context.Context, args []string) {
	err := rootApp.RunContext(ctx, args)

	// if app exited without error, return
	if err == nil {
		return
	}

	// if app exited with an ExitError, exit with the given exit code
	if code, ok := shell.GetExitCode(err); ok {
		os.Exit(code)
	}

	// otherwise, report the error and exit with exit code 1
	fmt.Fprintf(os.Stderr, "exit error: %s\n", err.Error())
	os.Exit(1)
}

func createLogger(ctx *cli.Context) (*zap.Logger, error) {
	level := getLogLevelFromCLI(ctx)
	format := getLogFormatFromCLI(ctx)

	var config zap.Config
	if format == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	config.InitialFields = map[string]any{
		"app": "wakebridge",
	}

	config.Level = level

	return config.Build()
}

func getLogFormatFromCLI(ctx *cli.Context) string {
	format := ctx.String("log-format")
	if format != "" {
		return format
	}

	return "production"
}

func getLogLevelFromCLI(ctx *cli.Context) zap.AtomicLevel {
	lvl := ctx.String("log-level")

	if atom, err := zap.ParseAtomicLevel(lvl); err == nil {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}
