package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/blueprint/internal/models"
)

func TestForDay(t *testing.T) {
	want := map[time.Weekday]Mode{
		time.Monday:    ModeStrength,
		time.Tuesday:   ModeCardio,
		time.Wednesday: ModeStrength,
		time.Thursday:  ModeCardio,
		time.Friday:    ModeStrength,
		time.Saturday:  ModeCardio,
		time.Sunday:    ModeRest,
	}
	for day, mode := range want {
		assert.Equal(t, mode, ForDay(day), day.String())
	}
}

func TestToday(t *testing.T) {
	assert.Equal(t, ModeStrength, Today(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, ModeRest, Today(time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)))
}

func TestMode_SessionKind(t *testing.T) {
	kind, ok := ModeCardio.SessionKind()
	assert.True(t, ok)
	assert.Equal(t, models.SessionCardio, kind)

	_, ok = ModeRest.SessionKind()
	assert.False(t, ok)
}
