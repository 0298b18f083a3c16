package wake

import "time"

type Config struct {
	// Target is the process name the wake signal is delivered to
	Target string `conf:"target"`

	// Signal is the name of the signal to deliver
	Signal string `conf:"signal"`

	// Deliverer selects the delivery mechanism. Options: pkill, direct.
	Deliverer string `conf:"deliverer"`

	// PkillPath is the pkill binary used by the pkill deliverer
	PkillPath string `conf:"pkill_path"`

	// Timeout is the wall-clock bound on a single delivery attempt
	Timeout time.Duration `conf:"timeout"`
}

var DefaultConfig = map[string]any{
	"target":     "touch-timeout",
	"signal":     "SIGUSR1",
	"deliverer":  "pkill",
	"pkill_path": "pkill",
	"timeout":    "10s",
}
