package recordService

import (
	"testing"
	"time"

	"kartTrialsBot/models"
	"kartTrialsBot/services/trialService"
)

func TestSubmitFirstRecord(t *testing.T) {
	db := setupTestDB(t)

	result, err := SubmitTime(db, SubmitInput{
		UserID: 7, Track: "Mario Circuit", Time: "1:23.456", Mode: "150cc", Items: "shrooms",
	}, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	pb := result.PersonalBest
	if !pb.FirstRecord {
		t.Error("first submission should be reported as a first record")
	}
	if pb.IsImprovement {
		t.Error("a first record is not an improvement")
	}
	if pb.PriorBest != nil {
		t.Errorf("PriorBest = %v, want nil", pb.PriorBest)
	}
	if result.Record.ID == 0 {
		t.Error("record was not persisted")
	}
}

func TestSubmitImprovement(t *testing.T) {
	db := setupTestDB(t)

	_, err := SubmitTime(db, SubmitInput{
		UserID: 7, Track: "Mario Circuit", Time: "1:23.456", Mode: "150cc", Items: "shrooms",
	}, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	result, err := SubmitTime(db, SubmitInput{
		UserID: 7, Track: "Mario Circuit", Time: "1:20.000", Mode: "150cc", Items: "shrooms",
	}, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	pb := result.PersonalBest
	if !pb.IsImprovement {
		t.Error("faster time should be an improvement")
	}
	if pb.DeltaMillis != 3456 {
		t.Errorf("DeltaMillis = %d, want 3456", pb.DeltaMillis)
	}
	if pb.PriorBest == nil || pb.PriorBest.Format() != "1:23.456" {
		t.Errorf("PriorBest = %v, want 1:23.456", pb.PriorBest)
	}
}

func TestSubmitSlowerAndEqualTimes(t *testing.T) {
	db := setupTestDB(t)

	for _, newTime := range []string{"1:23.456", "1:30.000"} {
		t.Run(newTime, func(t *testing.T) {
			_, err := SubmitTime(db, SubmitInput{
				UserID: 7, Track: "Thwomp Ruins", Time: "1:23.456",
			}, time.Now())
			if err != nil {
				t.Fatal(err)
			}

			result, err := SubmitTime(db, SubmitInput{
				UserID: 7, Track: "Thwomp Ruins", Time: newTime,
			}, time.Now())
			if err != nil {
				t.Fatal(err)
			}
			if result.PersonalBest.IsImprovement {
				t.Errorf("time %s should not improve on 1:23.456", newTime)
			}
			if result.PersonalBest.FirstRecord {
				t.Error("prior record exists; not a first record")
			}
		})
	}
}

func TestSubmitDetectsOvertake(t *testing.T) {
	db := setupTestDB(t)

	_, err := SubmitTime(db, SubmitInput{
		UserID: 8, Track: "Rainbow Road", Time: "2:05.000",
	}, time.Now())
	if err != nil {
		t.Fatal(err)
	}

	// Slower submission takes nothing
	slower, err := SubmitTime(db, SubmitInput{
		UserID: 7, Track: "Rainbow Road", Time: "2:10.000",
	}, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if slower.OvertakenUserID != nil {
		t.Errorf("slower time should not overtake, got user %d", *slower.OvertakenUserID)
	}

	faster, err := SubmitTime(db, SubmitInput{
		UserID: 7, Track: "Rainbow Road", Time: "2:00.000",
	}, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if faster.OvertakenUserID == nil || *faster.OvertakenUserID != 8 {
		t.Errorf("OvertakenUserID = %v, want 8", faster.OvertakenUserID)
	}

	// Beating your own top time is not an overtake
	own, err := SubmitTime(db, SubmitInput{
		UserID: 7, Track: "Rainbow Road", Time: "1:58.000",
	}, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if own.OvertakenUserID != nil {
		t.Errorf("beating yourself is not an overtake, got user %d", *own.OvertakenUserID)
	}
}

func TestSubmitValidationLeavesNoTrace(t *testing.T) {
	db := setupTestDB(t)

	tests := []struct {
		name string
		in   SubmitInput
	}{
		{"bad track", SubmitInput{UserID: 7, Track: "Moo Moo Farm", Time: "1:23.456"}},
		{"bad time", SubmitInput{UserID: 7, Track: "Mario Circuit", Time: "1:73.456"}},
		{"bad mode", SubmitInput{UserID: 7, Track: "Mario Circuit", Time: "1:23.456", Mode: "100cc"}},
		{"bad items", SubmitInput{UserID: 7, Track: "Mario Circuit", Time: "1:23.456", Items: "bananas"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SubmitTime(db, tt.in, time.Now())
			if err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	var count int64
	db.Model(&models.TimeTrial{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected submissions left %d rows behind", count)
	}
}

func TestSubmitForwardsToWeeklyLedger(t *testing.T) {
	t.Setenv("ROTATION_EPOCH", "2025-10-14")
	db := setupTestDB(t)

	now := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	trial, err := trialService.OpenCycle(db, 1, now)
	if err != nil {
		t.Fatal(err)
	}

	featured := trial.Track1

	qualifying, err := SubmitTime(db, SubmitInput{
		UserID: 7, Track: featured, Time: "1:30.000", Mode: "150cc", Items: "shrooms",
	}, now)
	if err != nil {
		t.Fatal(err)
	}
	if qualifying.Weekly == nil {
		t.Fatal("qualifying submission should reach the weekly ledger")
	}
	if qualifying.Weekly.WeekNumber != 1 || !qualifying.Weekly.FirstRecord {
		t.Errorf("Weekly = %+v, want week 1 first record", qualifying.Weekly)
	}

	improved, err := SubmitTime(db, SubmitInput{
		UserID: 7, Track: featured, Time: "1:28.000", Mode: "150cc", Items: "shrooms",
	}, now)
	if err != nil {
		t.Fatal(err)
	}
	if improved.Weekly == nil || !improved.Weekly.IsImprovement || improved.Weekly.DeltaMillis != 2000 {
		t.Errorf("Weekly = %+v, want improvement by 2000ms", improved.Weekly)
	}

	wrongMode, err := SubmitTime(db, SubmitInput{
		UserID: 7, Track: featured, Time: "1:10.000", Mode: "200cc", Items: "shrooms",
	}, now)
	if err != nil {
		t.Fatal(err)
	}
	if wrongMode.Weekly != nil {
		t.Error("200cc submission must not qualify for the weekly trial")
	}

	var ledger int64
	db.Model(&models.WeeklySubmission{}).Count(&ledger)
	if ledger != 2 {
		t.Errorf("weekly ledger has %d rows, want 2", ledger)
	}
}
