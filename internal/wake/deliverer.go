package wake

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Deliverer sends a named signal to every process matching a target
// process name. Implementations report an error when nothing could be
// signalled, including when no process matched the target name.
type Deliverer interface {
	Deliver(ctx context.Context, target string, signal string) error
}

func NewDeliverer(config Config, log *zap.Logger) (Deliverer, error) {
	switch config.Deliverer {
	case "", "pkill":
		return NewPkillDeliverer(config, log), nil
	case "direct":
		return NewDirectDeliverer(log), nil
	default:
		return nil, fmt.Errorf("unknown deliverer: %q", config.Deliverer)
	}
}
