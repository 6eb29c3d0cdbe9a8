package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCountdown(t *testing.T) {
	assert.Equal(t, "25:00", formatCountdown(25*time.Minute))
	assert.Equal(t, "04:05", formatCountdown(4*time.Minute+5*time.Second))
	assert.Equal(t, "00:00", formatCountdown(0))
	assert.Equal(t, "90:00", formatCountdown(90*time.Minute))
}
