package tools

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGearRatio(t *testing.T) {
	tests := []struct {
		name     string
		spur     int
		pinion   int
		internal string
		want     string
		wantErr  bool
	}{
		{name: "direct drive", spur: 80, pinion: 20, internal: "1", want: "4"},
		{name: "with internal ratio", spur: 78, pinion: 26, internal: "2.6", want: "7.8"},
		{name: "zero pinion", spur: 80, pinion: 0, internal: "1", wantErr: true},
		{name: "negative internal", spur: 80, pinion: 20, internal: "-1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GearRatio(tt.spur, tt.pinion, decimal.RequireFromString(tt.internal))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestRollout(t *testing.T) {
	got, err := Rollout(decimal.RequireFromString("64"), 80, 20, decimal.NewFromInt(1))
	assert.NoError(t, err)
	// 64mm * pi / 4.0 ~ 50.27mm per motor rev
	assert.InDelta(t, 50.265, got.InexactFloat64(), 0.01)

	_, err = Rollout(decimal.Zero, 80, 20, decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRacePace(t *testing.T) {
	laps, remainder, err := RacePace(5*time.Minute, 28*time.Second)
	assert.NoError(t, err)
	assert.Equal(t, 10, laps)
	assert.Equal(t, 20*time.Second, remainder)

	_, _, err = RacePace(0, 28*time.Second)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
