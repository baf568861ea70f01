package trialService

import (
	"errors"

	"kartTrialsBot/models"

	"gorm.io/gorm"
)

// Only standard-ruleset submissions count toward the weekly trial.
const (
	qualifyingMode  = "150cc"
	qualifyingItems = "shrooms"
)

const weeklyTimeOrder = "time_minutes * 60000 + time_seconds * 1000 + time_milliseconds ASC, id ASC"

// WeeklyOutcome reports how a qualifying submission landed within the active
// cycle, independent of the user's global personal-best outcome.
type WeeklyOutcome struct {
	WeekNumber    int
	Track         string
	PriorBest     *models.TimeValue
	FirstRecord   bool
	IsImprovement bool
	DeltaMillis   int
}

// BestWeeklyFor returns the user's fastest ledger entry for a week and track,
// or nil.
func BestWeeklyFor(db *gorm.DB, week int, userID int64, track string) (*models.WeeklySubmission, error) {
	var sub models.WeeklySubmission
	result := db.
		Where("week_number = ? AND user_id = ? AND track_name = ?", week, userID, track).
		Order(weeklyTimeOrder).
		First(&sub)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &sub, nil
}

// RecordQualifyingSubmission copies a submission into the weekly ledger when
// a cycle is active and the record matches the cycle's ruleset and tracks.
// Returns nil with no error when the submission simply does not qualify.
// Must run in the same transaction as the main insert so the weekly outcome
// and the global outcome describe the same moment.
func RecordQualifyingSubmission(db *gorm.DB, rec *models.TimeTrial) (*WeeklyOutcome, error) {
	trial, err := ActiveTrial(db)
	if err != nil {
		return nil, err
	}
	if trial == nil {
		return nil, nil
	}

	if rec.GameMode != qualifyingMode || rec.ItemsSetting != qualifyingItems || !trial.HasTrack(rec.TrackName) {
		return nil, nil
	}

	outcome := &WeeklyOutcome{WeekNumber: trial.WeekNumber, Track: rec.TrackName}

	prior, err := BestWeeklyFor(db, trial.WeekNumber, rec.UserID, rec.TrackName)
	if err != nil {
		return nil, err
	}
	newTime := rec.Time()
	if prior == nil {
		outcome.FirstRecord = true
	} else {
		priorTime := prior.Time()
		outcome.PriorBest = &priorTime
		outcome.IsImprovement = newTime.Compare(priorTime) < 0
		delta := newTime.TotalMillis() - priorTime.TotalMillis()
		if delta < 0 {
			delta = -delta
		}
		outcome.DeltaMillis = delta
	}

	sub := models.WeeklySubmission{
		WeekNumber:       trial.WeekNumber,
		UserID:           rec.UserID,
		TrackName:        rec.TrackName,
		TimeMinutes:      rec.TimeMinutes,
		TimeSeconds:      rec.TimeSeconds,
		TimeMilliseconds: rec.TimeMilliseconds,
		GameMode:         rec.GameMode,
		ItemsSetting:     rec.ItemsSetting,
		VehicleSetup:     rec.VehicleSetup,
		Notes:            rec.Notes,
		DateRecorded:     rec.DateRecorded,
	}
	if err := db.Create(&sub).Error; err != nil {
		return nil, err
	}

	return outcome, nil
}
