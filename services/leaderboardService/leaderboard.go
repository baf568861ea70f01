package leaderboardService

import (
	"kartTrialsBot/gamedata"
	"kartTrialsBot/models"
	"kartTrialsBot/services/recordService"

	"gorm.io/gorm"
)

// TrackLeader pairs a track with its fastest record. Holder is nil when the
// track has no submissions for the key.
type TrackLeader struct {
	Track  string
	Holder *models.TimeTrial
}

// GlobalLeaderboard returns the fastest submission per track across all
// users, in catalog order, covering every track whether or not anyone has a
// record on it.
func GlobalLeaderboard(db *gorm.DB, mode, items string) ([]TrackLeader, error) {
	leaders := make([]TrackLeader, 0, len(gamedata.MK8Tracks))
	for _, track := range gamedata.MK8Tracks {
		top, err := recordService.TopFor(db, track, mode, items)
		if err != nil {
			return nil, err
		}
		leaders = append(leaders, TrackLeader{Track: track, Holder: top})
	}
	return leaders, nil
}

// CycleLeaderboard ranks a closed (or running) week's submissions for one
// track, fastest first, up to limit rows. It reads only the weekly ledger,
// never the main store, so the result stays fixed once the cycle closes.
func CycleLeaderboard(db *gorm.DB, week int, track string, limit int) ([]models.WeeklySubmission, error) {
	var subs []models.WeeklySubmission
	err := db.
		Where("week_number = ? AND track_name = ?", week, track).
		Order("time_minutes * 60000 + time_seconds * 1000 + time_milliseconds ASC, id ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}

	// One row per user: the ledger keeps every attempt, the leaderboard only
	// each user's best.
	seen := make(map[int64]bool)
	ranked := make([]models.WeeklySubmission, 0, limit)
	for _, sub := range subs {
		if seen[sub.UserID] {
			continue
		}
		seen[sub.UserID] = true
		ranked = append(ranked, sub)
		if limit > 0 && len(ranked) >= limit {
			break
		}
	}
	return ranked, nil
}
