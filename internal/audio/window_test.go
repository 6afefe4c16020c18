package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	const rate = 16000

	tests := []struct {
		name      string
		seconds   float64
		wantSizes []time.Duration
	}{
		{"exact multiple", 60, []time.Duration{30 * time.Second, 30 * time.Second}},
		{"fractional remainder", 65, []time.Duration{30 * time.Second, 30 * time.Second, 5 * time.Second}},
		{"shorter than one window", 12.5, []time.Duration{12500 * time.Millisecond}},
		{"exactly one window", 30, []time.Duration{30 * time.Second}},
		{"empty", 0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frames := int(tt.seconds * rate)
			windows := Split(frames, rate, 30*time.Second)
			require.Len(t, windows, len(tt.wantSizes))

			var prevEnd time.Duration
			for i, w := range windows {
				assert.Equal(t, i, w.Index)
				assert.Equal(t, tt.wantSizes[i], w.Duration())
				assert.Equal(t, prevEnd, w.Start, "windows must be contiguous")
				prevEnd = w.End
			}
			if len(windows) > 0 {
				assert.Equal(t, frames, windows[len(windows)-1].endFrame)
			}
		})
	}
}

func TestSplitInvalid(t *testing.T) {
	assert.Nil(t, Split(100, 0, 30*time.Second))
	assert.Nil(t, Split(-1, 16000, 30*time.Second))

	// a non-positive size degrades to a single window
	windows := Split(16000, 16000, 0)
	require.Len(t, windows, 1)
	assert.Equal(t, time.Second, windows[0].Duration())
}
