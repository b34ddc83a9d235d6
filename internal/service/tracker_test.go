package service

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ftracker/internal/config"
	"ftracker/internal/workout"
)

var samplePackages = []Package{
	{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{Code: "RUN", Data: []float64{15000, 1, 75}},
	{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
}

func TestTrackerRunPlain(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTracker(&buf, config.DisplayConfig{})

	require.NoError(t, tracker.Run(samplePackages))

	expected := "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.\n" +
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.\n" +
		"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.\n"
	assert.Equal(t, expected, buf.String())
}

func TestTrackerRunStyled(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewTracker(&buf, config.DisplayConfig{Style: config.StyleStyled, Chart: true})

	require.NoError(t, tracker.Run(samplePackages))

	out := buf.String()
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[0], "Тип тренировки: Swimming;"))
	assert.Contains(t, out, "Workouts")
	assert.Contains(t, out, "kcal per workout")
}

func TestTrackerProcessErrors(t *testing.T) {
	tests := []struct {
		name    string
		pkgs    []Package
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown code",
			pkgs:    []Package{{Code: "XYZ", Data: []float64{1, 1, 1}}},
			wantErr: workout.ErrUnknownWorkout,
			wantMsg: "package 0 (XYZ)",
		},
		{
			name: "arity mismatch after a valid package",
			pkgs: []Package{
				{Code: "RUN", Data: []float64{15000, 1, 75}},
				{Code: "WLK", Data: []float64{9000, 1, 75}},
			},
			wantErr: workout.ErrArgCount,
			wantMsg: "package 1 (WLK)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tracker := NewTracker(&buf, config.DefaultConfig().Display)

			err := tracker.Run(tt.pkgs)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Empty(t, buf.String(), "nothing is written when a package fails")
		})
	}
}

func TestTrackerProcessEmpty(t *testing.T) {
	tracker := NewTracker(&bytes.Buffer{}, config.DisplayConfig{})

	msgs, err := tracker.Process(nil)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
