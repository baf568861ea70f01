package recordService

import (
	"kartTrialsBot/models"

	"gorm.io/gorm"
)

// PersonalBestOutcome describes how a new time relates to the user's prior
// best for the same key. A first record is its own outcome, not an
// improvement.
type PersonalBestOutcome struct {
	PriorBest     *models.TimeValue
	FirstRecord   bool
	IsImprovement bool
	DeltaMillis   int
}

// EvaluatePersonalBest compares newTime against the stored best for the key.
// It must run before the new record is inserted, otherwise the new record is
// its own prior best and every submission looks like a tie.
func EvaluatePersonalBest(db *gorm.DB, userID int64, track, mode, items string, newTime models.TimeValue) (PersonalBestOutcome, error) {
	best, err := BestFor(db, userID, track, mode, items)
	if err != nil {
		return PersonalBestOutcome{}, err
	}

	if best == nil {
		return PersonalBestOutcome{FirstRecord: true}, nil
	}

	prior := best.Time()
	delta := newTime.TotalMillis() - prior.TotalMillis()
	if delta < 0 {
		delta = -delta
	}

	return PersonalBestOutcome{
		PriorBest:     &prior,
		IsImprovement: newTime.Compare(prior) < 0,
		DeltaMillis:   delta,
	}, nil
}
