package wake_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/touch-timeout/wakebridge/internal/wake"
	"github.com/touch-timeout/wakebridge/util"
	"go.uber.org/zap"
)

func TestDirectDeliverer_UnknownSignal(t *testing.T) {
	d := wake.NewDirectDeliverer(zap.NewNop())

	err := d.Deliver(context.Background(), "touch-timeout", "SIGNOPE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown signal")
}

func TestDirectDeliverer_NoProcessMatched(t *testing.T) {
	d := wake.NewDirectDeliverer(zap.NewNop())

	err := d.Deliver(context.Background(), "wb-no-such-proc", "SIGUSR1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no process matching "wb-no-such-proc"`)
}

func TestDirectDeliverer_CancelledContext(t *testing.T) {
	d := wake.NewDirectDeliverer(zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Deliver(ctx, "touch-timeout", "SIGUSR1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDirectDeliverer_SignalsMatchingProcess(t *testing.T) {
	// run sleep under a unique name, so only our own child matches.
	// comm is truncated to 15 chars by the kernel, keep the name short.
	name := fmt.Sprintf("wb-%d", os.Getpid()%1000000)

	sleepPath, err := exec.LookPath("sleep")
	require.NoError(t, err)

	data, err := os.ReadFile(sleepPath)
	require.NoError(t, err)

	bin := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(bin, data, 0o755))

	cmd := exec.Command(bin, "60")
	require.NoError(t, cmd.Start())

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	// best effort, the child must not outlive the test
	t.Cleanup(func() { cmd.Process.Kill() })

	select {
	case <-done:
		// multiplexed binaries (busybox) dispatch on argv[0] and
		// exit immediately under an unknown name
		t.Skipf("%s does not run under a different name", sleepPath)
	case <-time.After(100 * time.Millisecond):
	}

	require.True(t, util.IsProcessAlive(cmd.Process.Pid))

	d := wake.NewDirectDeliverer(zap.NewNop())

	err = d.Deliver(context.Background(), name, "SIGTERM")
	require.NoError(t, err)

	select {
	case <-done:
		// terminated by the delivered signal
	case <-time.After(3 * time.Second):
		t.Fatal("process never terminated after signal delivery")
	}
}
