package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/touch-timeout/wakebridge/util"
)

func TestTruthy(t *testing.T) {
	truthy := []string{"1", "t", "true", "TRUE", "y", "yes", "on", " on "}
	for _, s := range truthy {
		assert.True(t, util.Truthy(s), s)
	}

	falsy := []string{"", "0", "f", "false", "no", "off", "nope"}
	for _, s := range falsy {
		assert.False(t, util.Truthy(s), s)
	}
}
