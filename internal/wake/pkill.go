package wake

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// PkillDeliverer shells out to pkill to deliver the signal. This is the
// default mechanism and mirrors `pkill -USR1 <target>`.
type PkillDeliverer struct {
	path    string
	timeout time.Duration

	log *zap.Logger
}

func NewPkillDeliverer(config Config, log *zap.Logger) *PkillDeliverer {
	path := config.PkillPath
	if path == "" {
		path = "pkill"
	}

	return &PkillDeliverer{
		path:    path,
		timeout: config.Timeout,
		log:     log.Named("pkill"),
	}
}

func (d *PkillDeliverer) Deliver(ctx context.Context, target string, signal string) error {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	// pkill expects the signal without the SIG prefix, e.g. -USR1
	sigArg := "-" + strings.TrimPrefix(signal, "SIG")

	cmd := exec.CommandContext(ctx, d.path, sigArg, target)

	out, err := cmd.CombinedOutput()
	if err == nil {
		d.log.Debug("signal delivered",
			zap.String("target", target),
			zap.String("signal", signal),
		)
		return nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s timed out after %s", d.path, d.timeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// pkill exits 1 when no process matched the target name. The
		// bridge treats this like any other delivery failure.
		if exitErr.ExitCode() == 1 {
			return fmt.Errorf("no process matching %q", target)
		}

		if detail := strings.TrimSpace(string(out)); detail != "" {
			return fmt.Errorf("%s %s %s: %s (%w)", d.path, sigArg, target, detail, err)
		}
	}

	return fmt.Errorf("%s %s %s: %w", d.path, sigArg, target, err)
}
