package wake_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/touch-timeout/wakebridge/internal/wake"
	"go.uber.org/zap"
)

func TestPkillDeliverer_Success(t *testing.T) {
	// `true` ignores the signal and target arguments and exits 0
	d := wake.NewPkillDeliverer(wake.Config{PkillPath: "true"}, zap.NewNop())

	err := d.Deliver(context.Background(), "touch-timeout", "SIGUSR1")
	assert.NoError(t, err)
}

func TestPkillDeliverer_NoProcessMatched(t *testing.T) {
	// `false` exits 1, which is pkill's "no process matched" status
	d := wake.NewPkillDeliverer(wake.Config{PkillPath: "false"}, zap.NewNop())

	err := d.Deliver(context.Background(), "touch-timeout", "SIGUSR1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no process matching "touch-timeout"`)
}

func TestPkillDeliverer_OtherFailure(t *testing.T) {
	script := writeScript(t, "fail-pkill", "#!/bin/sh\necho 'pkill: invalid option' >&2\nexit 2\n")

	d := wake.NewPkillDeliverer(wake.Config{PkillPath: script}, zap.NewNop())

	err := d.Deliver(context.Background(), "touch-timeout", "SIGUSR1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pkill: invalid option")
}

func TestPkillDeliverer_MissingBinary(t *testing.T) {
	d := wake.NewPkillDeliverer(wake.Config{PkillPath: "/nonexistent/pkill"}, zap.NewNop())

	err := d.Deliver(context.Background(), "touch-timeout", "SIGUSR1")
	assert.Error(t, err)
}

func TestPkillDeliverer_Timeout(t *testing.T) {
	script := writeScript(t, "slow-pkill", "#!/bin/sh\nsleep 5\n")

	d := wake.NewPkillDeliverer(wake.Config{
		PkillPath: script,
		Timeout:   50 * time.Millisecond,
	}, zap.NewNop())

	err := d.Deliver(context.Background(), "touch-timeout", "SIGUSR1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestPkillDeliverer_CancelledContext(t *testing.T) {
	d := wake.NewPkillDeliverer(wake.Config{PkillPath: "true"}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Deliver(ctx, "touch-timeout", "SIGUSR1")
	assert.Error(t, err)
}

func writeScript(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o755))

	return path
}
