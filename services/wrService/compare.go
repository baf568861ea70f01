package wrService

import (
	"fmt"

	"kartTrialsBot/gamedata"
	"kartTrialsBot/models"

	"gorm.io/gorm"
)

// BucketEntry is one track's comparison against the world record.
type BucketEntry struct {
	Track      string
	UserTime   models.TimeValue
	RecordTime models.TimeValue
	GapSeconds float64
}

// BucketLabels in display order. Boundaries are inclusive upper bounds, so a
// gap of exactly 2.000s lands in "Within 2s".
var BucketLabels = []string{"Within 1s", "Within 2s", "Within 3s", "Within 5s", "Within 7s", "7s+"}

var bucketBounds = []float64{1, 2, 3, 5, 7}

// bucketLabel classifies a gap. A negative gap (the baseline got beaten)
// still lands in the smallest bucket; there is no special category for it.
func bucketLabel(gap float64) string {
	for i, bound := range bucketBounds {
		if gap <= bound {
			return BucketLabels[i]
		}
	}
	return BucketLabels[len(BucketLabels)-1]
}

// userBestPerTrack reduces the user's records for a mode/items pair to one
// best time per track, keyed by track name.
func userBestPerTrack(db *gorm.DB, userID int64, mode, items string) (map[string]models.TimeValue, error) {
	var recs []models.TimeTrial
	err := db.
		Where("user_id = ? AND game_mode = ? AND items_setting = ?", userID, mode, items).
		Order("time_minutes * 60000 + time_seconds * 1000 + time_milliseconds ASC, id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	bests := make(map[string]models.TimeValue)
	for _, rec := range recs {
		if _, seen := bests[rec.TrackName]; !seen {
			bests[rec.TrackName] = rec.Time()
		}
	}
	return bests, nil
}

// CompareToRecords buckets the user's per-track bests by distance to the
// given baseline table. Tracks without a best, without a baseline entry, or
// with an unparseable baseline are skipped. Entries within each bucket follow
// catalog order.
func CompareToRecords(db *gorm.DB, userID int64, mode, items string, records map[string]string) (map[string][]BucketEntry, error) {
	bests, err := userBestPerTrack(db, userID, mode, items)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string][]BucketEntry, len(BucketLabels))
	for _, label := range BucketLabels {
		buckets[label] = nil
	}

	for _, track := range gamedata.MK8Tracks {
		userTime, ok := bests[track]
		if !ok {
			continue
		}
		wrRaw, ok := records[track]
		if !ok {
			continue
		}
		wrTime, err := models.ParseTime(wrRaw)
		if err != nil {
			continue
		}

		gap := float64(userTime.TotalMillis()-wrTime.TotalMillis()) / 1000.0
		label := bucketLabel(gap)
		buckets[label] = append(buckets[label], BucketEntry{
			Track:      track,
			UserTime:   userTime,
			RecordTime: wrTime,
			GapSeconds: gap,
		})
	}

	return buckets, nil
}

// CompareItemless buckets the user's shroomless 150cc bests against the
// itemless world records.
func CompareItemless(db *gorm.DB, userID int64) (map[string][]BucketEntry, error) {
	return CompareToRecords(db, userID, "150cc", "no_items", gamedata.WorldRecordsItemless)
}

// CompareShrooms buckets the user's shroom-ruleset bests for an engine class
// against the shroom world records.
func CompareShrooms(db *gorm.DB, userID int64, cc string) (map[string][]BucketEntry, error) {
	records, ok := gamedata.WorldRecordsShrooms[cc]
	if !ok {
		return nil, fmt.Errorf("no shroom world records for %q, choose 150cc or 200cc", cc)
	}
	return CompareToRecords(db, userID, cc, "shrooms", records)
}
