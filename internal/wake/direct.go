package wake

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// DirectDeliverer scans /proc for processes whose comm matches the
// target name and delivers the signal itself, for hosts without pkill.
type DirectDeliverer struct {
	log *zap.Logger
}

func NewDirectDeliverer(log *zap.Logger) *DirectDeliverer {
	return &DirectDeliverer{
		log: log.Named("direct"),
	}
}

func (d *DirectDeliverer) Deliver(ctx context.Context, target string, signal string) error {
	sig := unix.SignalNum(signal)
	if sig == 0 {
		return fmt.Errorf("unknown signal %q", signal)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	pids, err := findByComm(target)
	if err != nil {
		return err
	}

	if len(pids) == 0 {
		return fmt.Errorf("no process matching %q", target)
	}

	var errs []error
	for _, pid := range pids {
		if err := unix.Kill(pid, sig); err != nil {
			errs = append(errs, fmt.Errorf("pid %d: %w", pid, err))
			continue
		}

		d.log.Debug("signal delivered",
			zap.Int("pid", pid),
			zap.String("signal", signal),
		)
	}

	return errors.Join(errs...)
}

// findByComm returns the pids of all processes whose comm equals name.
// Note that the kernel truncates comm to 15 characters.
func findByComm(name string) ([]int, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, err
	}

	var pids []int
	for _, entry := range entries {
		pid, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}

		comm, err := os.ReadFile(filepath.Join("/proc", entry.Name(), "comm"))
		if err != nil {
			// the process may have exited in the meantime
			continue
		}

		if strings.TrimSuffix(string(comm), "\n") == name {
			pids = append(pids, pid)
		}
	}

	return pids, nil
}
