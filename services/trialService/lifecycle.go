package trialService

import (
	"errors"
	"fmt"
	"time"

	"kartTrialsBot/models"

	"gorm.io/gorm"
)

// ErrMultipleActiveTrials means the at-most-one-active invariant has been
// violated outside this package. The triggering operation is refused rather
// than silently repaired.
var ErrMultipleActiveTrials = errors.New("more than one active weekly trial")

// ActiveTrial returns the currently active trial, or nil if none.
func ActiveTrial(db *gorm.DB) (*models.WeeklyTrial, error) {
	var trials []models.WeeklyTrial
	if err := db.Where("active = ?", true).Find(&trials).Error; err != nil {
		return nil, err
	}
	switch len(trials) {
	case 0:
		return nil, nil
	case 1:
		return &trials[0], nil
	default:
		return nil, ErrMultipleActiveTrials
	}
}

// TrialForWeek returns the trial row for a week number, active or not, or nil.
func TrialForWeek(db *gorm.DB, week int) (*models.WeeklyTrial, error) {
	var trial models.WeeklyTrial
	result := db.Where("week_number = ?", week).First(&trial)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &trial, nil
}

// OpenCycle starts (or restarts) the trial for a week. Any currently active
// trial is deactivated in the same transaction, so there is never a moment
// with two active rows. Re-opening an existing week rewrites that week's row
// rather than creating a duplicate.
func OpenCycle(db *gorm.DB, week int, now time.Time) (*models.WeeklyTrial, error) {
	if week < 1 {
		return nil, fmt.Errorf("invalid week number %d", week)
	}

	tracks := SelectTracks(week)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 6)

	var trial *models.WeeklyTrial
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.WeeklyTrial{}).
			Where("active = ?", true).
			Update("active", false).Error; err != nil {
			return err
		}

		existing, err := TrialForWeek(tx, week)
		if err != nil {
			return err
		}

		if existing != nil {
			existing.Track1, existing.Track2, existing.Track3 = tracks[0], tracks[1], tracks[2]
			existing.StartDate = start
			existing.EndDate = end
			existing.Active = true
			trial = existing
			return tx.Save(existing).Error
		}

		trial = &models.WeeklyTrial{
			WeekNumber: week,
			Track1:     tracks[0],
			Track2:     tracks[1],
			Track3:     tracks[2],
			StartDate:  start,
			EndDate:    end,
			Active:     true,
		}
		return tx.Create(trial).Error
	})
	if err != nil {
		return nil, err
	}
	return trial, nil
}

// CloseCycle deactivates the active trial and returns it for leaderboard
// generation. With no active trial it is a no-op returning nil. Weekly
// submissions are left untouched; they are the permanent record of the cycle.
func CloseCycle(db *gorm.DB) (*models.WeeklyTrial, error) {
	var closed *models.WeeklyTrial
	err := db.Transaction(func(tx *gorm.DB) error {
		trial, err := ActiveTrial(tx)
		if err != nil {
			return err
		}
		if trial == nil {
			return nil
		}

		trial.Active = false
		if err := tx.Save(trial).Error; err != nil {
			return err
		}
		closed = trial
		return nil
	})
	if err != nil {
		return nil, err
	}
	return closed, nil
}

// CheckAndRecover opens the current week's cycle if the process slept through
// a rotation boundary. Safe to call repeatedly; it does nothing while the
// right trial is already running.
func CheckAndRecover(db *gorm.DB, now time.Time) (*models.WeeklyTrial, bool, error) {
	week := WeekNumberAt(now, RotationEpoch())

	active, err := ActiveTrial(db)
	if err != nil {
		return nil, false, err
	}
	if active != nil && active.WeekNumber == week {
		return active, false, nil
	}

	trial, err := OpenCycle(db, week, now)
	if err != nil {
		return nil, false, err
	}
	return trial, true, nil
}
