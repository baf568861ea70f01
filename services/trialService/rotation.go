package trialService

import (
	"log"
	"math/rand"
	"os"
	"time"

	"kartTrialsBot/gamedata"
)

// DefaultRotationEpoch anchors week numbering. Week 1 is the week containing
// this date; the epoch never moves once a deployment has trial history.
const DefaultRotationEpoch = "2025-10-14"

// RotationEpoch reads ROTATION_EPOCH (YYYY-MM-DD) from the environment,
// falling back to the default.
func RotationEpoch() time.Time {
	raw := os.Getenv("ROTATION_EPOCH")
	if raw == "" {
		raw = DefaultRotationEpoch
	}
	epoch, err := time.Parse("2006-01-02", raw)
	if err != nil {
		log.Printf("Invalid ROTATION_EPOCH %q, using default: %v", raw, err)
		epoch, _ = time.Parse("2006-01-02", DefaultRotationEpoch)
	}
	return epoch
}

// MondayOf returns the Monday of t's week, at midnight in t's location.
func MondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekNumberAt maps an instant to its trial week number, floored at 1. Both
// operands are normalized to UTC before their Mondays are taken: week
// boundaries are UTC week boundaries, so processes in different timezones
// (or crossing a DST transition) agree on the week for the same instant.
func WeekNumberAt(t, epoch time.Time) int {
	days := int(MondayOf(t.UTC()).Sub(MondayOf(epoch.UTC())).Hours() / 24)
	week := days/7 + 1
	if week < 1 {
		week = 1
	}
	return week
}

// SelectTracks picks the week's three featured tracks. The choice is a pure
// function of the week number: a private generator is seeded from it and
// thrown away, so nothing else in the process can perturb the result. Odd
// weeks feature exactly one Tour track; even weeks none.
func SelectTracks(week int) [3]string {
	rng := rand.New(rand.NewSource(int64(week)))

	var picks []string
	if week%2 == 1 {
		tour := gamedata.TourTracks()
		picks = append(picks, tour[rng.Intn(len(tour))])
	}

	pool := append([]string(nil), gamedata.NonTourTracks()...)
	for len(picks) < 3 {
		i := rng.Intn(len(pool))
		picks = append(picks, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}

	return [3]string{picks[0], picks[1], picks[2]}
}
