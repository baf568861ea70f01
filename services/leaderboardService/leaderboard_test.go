package leaderboardService

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"kartTrialsBot/gamedata"
	"kartTrialsBot/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	err = db.AutoMigrate(&models.TimeTrial{}, &models.WeeklySubmission{})
	if err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func TestGlobalLeaderboard(t *testing.T) {
	db := setupTestDB(t)

	insert := func(userID int64, track, timeStr string) {
		tv, err := models.ParseTime(timeStr)
		if err != nil {
			t.Fatal(err)
		}
		rec := models.TimeTrial{
			UserID: userID, TrackName: track,
			TimeMinutes: tv.Minutes, TimeSeconds: tv.Seconds, TimeMilliseconds: tv.Milliseconds,
			GameMode: "150cc", ItemsSetting: "shrooms",
			DateRecorded: time.Now(),
		}
		if err := db.Create(&rec).Error; err != nil {
			t.Fatal(err)
		}
	}

	insert(7, "Mario Circuit", "1:25.000")
	insert(8, "Mario Circuit", "1:23.000")
	insert(9, "Water Park", "1:41.000")

	leaders, err := GlobalLeaderboard(db, "150cc", "shrooms")
	if err != nil {
		t.Fatal(err)
	}

	if len(leaders) != len(gamedata.MK8Tracks) {
		t.Fatalf("leaderboard covers %d tracks, want %d", len(leaders), len(gamedata.MK8Tracks))
	}

	byTrack := make(map[string]*models.TimeTrial)
	for _, leader := range leaders {
		byTrack[leader.Track] = leader.Holder
	}

	if holder := byTrack["Mario Circuit"]; holder == nil || holder.UserID != 8 {
		t.Errorf("Mario Circuit leader = %+v, want user 8", holder)
	}
	if holder := byTrack["Water Park"]; holder == nil || holder.UserID != 9 {
		t.Errorf("Water Park leader = %+v, want user 9", holder)
	}
	if holder := byTrack["Rainbow Road"]; holder != nil {
		t.Errorf("Rainbow Road leader = %+v, want none", holder)
	}
}

func TestCycleLeaderboard(t *testing.T) {
	db := setupTestDB(t)

	insert := func(week int, userID int64, track, timeStr string) {
		tv, err := models.ParseTime(timeStr)
		if err != nil {
			t.Fatal(err)
		}
		sub := models.WeeklySubmission{
			WeekNumber: week, UserID: userID, TrackName: track,
			TimeMinutes: tv.Minutes, TimeSeconds: tv.Seconds, TimeMilliseconds: tv.Milliseconds,
			GameMode: "150cc", ItemsSetting: "shrooms",
			DateRecorded: time.Now(),
		}
		if err := db.Create(&sub).Error; err != nil {
			t.Fatal(err)
		}
	}

	insert(1, 7, "Big Blue", "1:30.000")
	insert(1, 7, "Big Blue", "1:27.000") // user 7's best
	insert(1, 8, "Big Blue", "1:26.000")
	insert(1, 9, "Big Blue", "1:29.000")
	insert(1, 9, "Mute City", "1:50.000") // other track
	insert(2, 10, "Big Blue", "1:00.000") // other week

	ranked, err := CycleLeaderboard(db, 1, "Big Blue", 10)
	if err != nil {
		t.Fatal(err)
	}

	wantOrder := []int64{8, 7, 9}
	if len(ranked) != len(wantOrder) {
		t.Fatalf("ranked %d entries, want %d: %+v", len(ranked), len(wantOrder), ranked)
	}
	for idx, want := range wantOrder {
		if ranked[idx].UserID != want {
			t.Errorf("position %d: user %d, want %d", idx+1, ranked[idx].UserID, want)
		}
	}

	// Limit truncates after per-user reduction
	top1, err := CycleLeaderboard(db, 1, "Big Blue", 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(top1) != 1 || top1[0].UserID != 8 {
		t.Errorf("top1 = %+v, want just user 8", top1)
	}

	// A week with no submissions is empty, not an error
	empty, err := CycleLeaderboard(db, 3, "Big Blue", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Errorf("week 3 = %+v, want empty", empty)
	}
}

// Cycle results are frozen: new main-store records after close must not move
// the weekly board.
func TestCycleLeaderboardIgnoresMainStore(t *testing.T) {
	db := setupTestDB(t)

	tv, _ := models.ParseTime("1:29.000")
	sub := models.WeeklySubmission{
		WeekNumber: 1, UserID: 7, TrackName: "Big Blue",
		TimeMinutes: tv.Minutes, TimeSeconds: tv.Seconds, TimeMilliseconds: tv.Milliseconds,
		GameMode: "150cc", ItemsSetting: "shrooms", DateRecorded: time.Now(),
	}
	if err := db.Create(&sub).Error; err != nil {
		t.Fatal(err)
	}

	faster, _ := models.ParseTime("1:10.000")
	rec := models.TimeTrial{
		UserID: 8, TrackName: "Big Blue",
		TimeMinutes: faster.Minutes, TimeSeconds: faster.Seconds, TimeMilliseconds: faster.Milliseconds,
		GameMode: "150cc", ItemsSetting: "shrooms", DateRecorded: time.Now(),
	}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatal(err)
	}

	ranked, err := CycleLeaderboard(db, 1, "Big Blue", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranked) != 1 || ranked[0].UserID != 7 {
		t.Errorf("ranked = %+v, want only user 7 from the ledger", ranked)
	}
}
