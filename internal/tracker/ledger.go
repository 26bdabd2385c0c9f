package tracker

import (
	"math"
	"time"

	"github.com/balkashynov/blueprint/internal/clock"
	"github.com/balkashynov/blueprint/internal/models"
)

// currentLedger returns the ledger to use at now and whether it differs from
// the persisted one. A missing ledger starts a window at now without a reset.
func (t *Tracker) currentLedger(stored *models.WeeklyLedger, now time.Time) (models.WeeklyLedger, bool) {
	if stored == nil {
		t.log.Info().Time("week_start", now).Msg("starting weekly ledger")
		return models.WeeklyLedger{ID: models.LedgerRowID, WindowStart: now}, true
	}
	if !ShouldReset(*stored, now) {
		return *stored, false
	}

	t.log.Info().
		Float64("zone2_minutes", stored.Zone2Minutes).
		Float64("vigorous_minutes", stored.VigorousMinutes).
		Time("previous_start", stored.WindowStart).
		Msg("weekly ledger reset")
	return models.WeeklyLedger{ID: models.LedgerRowID, WindowStart: now}, true
}

// ShouldReset reports whether the ledger window rolls over at now. It fires
// on a Monday whose calendar date differs from the window start, and never
// when the clock reads earlier than the window start.
func ShouldReset(ledger models.WeeklyLedger, now time.Time) bool {
	if now.Weekday() != time.Monday {
		return false
	}
	start := ledger.WindowStart.In(now.Location())
	if clock.CalendarDate(now) == clock.CalendarDate(start) {
		return false
	}
	return now.After(start)
}

// WeeklyProgress reports this week's cardio minutes against the targets
func (t *Tracker) WeeklyProgress() models.WeeklyProgress {
	return models.WeeklyProgress{
		Zone2Minutes:    t.ledger.Zone2Minutes,
		VigorousMinutes: t.ledger.VigorousMinutes,
		Zone2Target:     t.targets.Zone2Minutes,
		VigorousTarget:  t.targets.VigorousMinutes,
		Zone2Percent:    percent(t.ledger.Zone2Minutes, t.targets.Zone2Minutes),
		VigorousPercent: percent(t.ledger.VigorousMinutes, t.targets.VigorousMinutes),
		WindowStart:     t.ledger.WindowStart,
	}
}

// Ledger returns the current weekly ledger
func (t *Tracker) Ledger() models.WeeklyLedger {
	return t.ledger
}

func percent(accumulated, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return math.Min(100, 100*accumulated/target)
}
