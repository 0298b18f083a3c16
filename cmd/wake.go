package cmd

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/touch-timeout/wakebridge/internal/shell"
	"github.com/urfave/cli/v2"
)

var (
	wakeCmdDescription = `The wake command sends a wake request to a running bridge,
	equivalent to:

	    curl -X POST http://127.0.0.1:8765/wake

	The response body is printed to stdout. The command exits
	nonzero when the bridge reports a delivery failure.`
	wakeCmd = &cli.Command{
		Name:        "wake",
		Usage:       "Send a wake request to a running bridge.",
		Description: wakeCmdDescription,
		Action:      wakeAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The address the bridge listens on.",
				Value:    "127.0.0.1",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port the bridge listens on.",
				Value:    8765,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT"},
			},
		},
	}
)

func wakeAction(ctx *cli.Context) error {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.Logger = nil // suppress retryablehttp's default logging
	client.HTTPClient.Timeout = 15 * time.Second

	url := fmt.Sprintf("http://%s:%d/wake", ctx.String("host"), ctx.Int("port"))

	resp, err := client.Post(url, "text/plain", nil)
	if err != nil {
		return fmt.Errorf("wake request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	fmt.Print(string(body))

	if resp.StatusCode != http.StatusOK {
		return shell.NewExitError(1)
	}

	return nil
}

func init() {
	rootApp.Commands = append(rootApp.Commands, wakeCmd)
}
