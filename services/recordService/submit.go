package recordService

import (
	"time"

	"kartTrialsBot/gamedata"
	"kartTrialsBot/models"
	"kartTrialsBot/services/common"
	"kartTrialsBot/services/trialService"

	"gorm.io/gorm"
)

// SubmitInput is one lap-time submission. Mode and Items default to the
// standard ruleset when empty.
type SubmitInput struct {
	UserID  int64
	Track   string
	Time    string
	Mode    string
	Items   string
	Vehicle *string
	Notes   *string
}

// SubmitResult is everything the caller needs to narrate the submission:
// the stored record, the personal-best outcome, who (if anyone) lost the top
// spot, and the weekly-trial outcome when the submission qualified.
type SubmitResult struct {
	Record          models.TimeTrial
	PersonalBest    PersonalBestOutcome
	OvertakenUserID *int64
	Weekly          *trialService.WeeklyOutcome
}

// ValidateSubmission checks every field and parses the time. Nothing is
// written; a bad submission leaves no trace.
func ValidateSubmission(in *SubmitInput) (models.TimeValue, error) {
	if in.Mode == "" {
		in.Mode = "150cc"
	}
	if in.Items == "" {
		in.Items = "shrooms"
	}

	if !gamedata.IsValidTrack(in.Track) {
		return models.TimeValue{}, &common.ValidationError{Field: "track", Reason: "unknown track name"}
	}
	if !gamedata.IsValidMode(in.Mode) {
		return models.TimeValue{}, &common.ValidationError{Field: "mode", Reason: "choose 150cc or 200cc"}
	}
	if !gamedata.IsValidItems(in.Items) {
		return models.TimeValue{}, &common.ValidationError{Field: "items", Reason: "choose shrooms or no_items"}
	}

	tv, err := models.ParseTime(in.Time)
	if err != nil {
		return models.TimeValue{}, &common.ValidationError{Field: "time", Reason: err.Error()}
	}
	return tv, nil
}

// SubmitTime validates and stores a submission. The prior-best read, the
// previous-top read, the insert and the weekly ledger write all happen in one
// transaction, so a concurrent submission to the same key can't wedge itself
// between the reads and the write and produce a wrong "you got beaten" call.
func SubmitTime(db *gorm.DB, in SubmitInput, now time.Time) (*SubmitResult, error) {
	tv, err := ValidateSubmission(&in)
	if err != nil {
		return nil, err
	}

	result := &SubmitResult{}
	err = db.Transaction(func(tx *gorm.DB) error {
		prevTop, err := TopFor(tx, in.Track, in.Mode, in.Items)
		if err != nil {
			return err
		}

		pb, err := EvaluatePersonalBest(tx, in.UserID, in.Track, in.Mode, in.Items, tv)
		if err != nil {
			return err
		}
		result.PersonalBest = pb

		rec := models.TimeTrial{
			UserID:           in.UserID,
			TrackName:        in.Track,
			TimeMinutes:      tv.Minutes,
			TimeSeconds:      tv.Seconds,
			TimeMilliseconds: tv.Milliseconds,
			GameMode:         in.Mode,
			ItemsSetting:     in.Items,
			VehicleSetup:     in.Vehicle,
			Notes:            in.Notes,
			DateRecorded:     now,
		}
		if err := InsertTime(tx, &rec); err != nil {
			return err
		}
		result.Record = rec

		if prevTop != nil && prevTop.UserID != in.UserID && tv.Compare(prevTop.Time()) < 0 {
			overtaken := prevTop.UserID
			result.OvertakenUserID = &overtaken
		}

		weekly, err := trialService.RecordQualifyingSubmission(tx, &rec)
		if err != nil {
			return err
		}
		result.Weekly = weekly
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
