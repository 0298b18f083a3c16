package wake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/touch-timeout/wakebridge/internal/wake"
	"go.uber.org/zap"
)

func TestNewDeliverer(t *testing.T) {
	d, err := wake.NewDeliverer(wake.Config{}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &wake.PkillDeliverer{}, d)

	d, err = wake.NewDeliverer(wake.Config{Deliverer: "pkill"}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &wake.PkillDeliverer{}, d)

	d, err = wake.NewDeliverer(wake.Config{Deliverer: "direct"}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &wake.DirectDeliverer{}, d)

	_, err = wake.NewDeliverer(wake.Config{Deliverer: "carrier-pigeon"}, zap.NewNop())
	assert.Error(t, err)
}
