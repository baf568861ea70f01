package recordService

import (
	"fmt"
	"strings"
	"testing"
	"time"

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
	err = db.AutoMigrate(&models.TimeTrial{}, &models.WeeklyTrial{}, &models.WeeklySubmission{})
	if err != nil {
		t.Fatalf("migrating test database: %v", err)
	}
	return db
}

func mustInsert(t *testing.T, db *gorm.DB, userID int64, track, timeStr, mode, items string) models.TimeTrial {
	t.Helper()
	tv, err := models.ParseTime(timeStr)
	if err != nil {
		t.Fatalf("bad test time %q: %v", timeStr, err)
	}
	rec := models.TimeTrial{
		UserID:           userID,
		TrackName:        track,
		TimeMinutes:      tv.Minutes,
		TimeSeconds:      tv.Seconds,
		TimeMilliseconds: tv.Milliseconds,
		GameMode:         mode,
		ItemsSetting:     items,
		DateRecorded:     time.Now(),
	}
	if err := InsertTime(db, &rec); err != nil {
		t.Fatalf("inserting record: %v", err)
	}
	return rec
}

func TestBestFor(t *testing.T) {
	db := setupTestDB(t)

	mustInsert(t, db, 7, "Mario Circuit", "1:25.000", "150cc", "shrooms")
	mustInsert(t, db, 7, "Mario Circuit", "1:23.456", "150cc", "shrooms")
	mustInsert(t, db, 7, "Mario Circuit", "1:24.000", "150cc", "shrooms")
	// Different key, faster time; must not leak in
	mustInsert(t, db, 7, "Mario Circuit", "1:10.000", "200cc", "shrooms")
	mustInsert(t, db, 8, "Mario Circuit", "1:00.000", "150cc", "shrooms")

	best, err := BestFor(db, 7, "Mario Circuit", "150cc", "shrooms")
	if err != nil {
		t.Fatal(err)
	}
	if best == nil || best.Time().Format() != "1:23.456" {
		t.Errorf("BestFor = %v, want 1:23.456", best)
	}

	none, err := BestFor(db, 7, "Rainbow Road", "150cc", "shrooms")
	if err != nil {
		t.Fatal(err)
	}
	if none != nil {
		t.Errorf("BestFor on empty key = %v, want nil", none)
	}
}

func TestBestForTieBreaksByInsertionOrder(t *testing.T) {
	db := setupTestDB(t)

	first := mustInsert(t, db, 7, "Big Blue", "1:30.000", "150cc", "shrooms")
	mustInsert(t, db, 7, "Big Blue", "1:30.000", "150cc", "shrooms")

	best, err := BestFor(db, 7, "Big Blue", "150cc", "shrooms")
	if err != nil {
		t.Fatal(err)
	}
	if best == nil || best.ID != first.ID {
		t.Errorf("tie should resolve to earliest insert (id %d), got %+v", first.ID, best)
	}
}

func TestAllForOptionalFilters(t *testing.T) {
	db := setupTestDB(t)

	mustInsert(t, db, 7, "Mute City", "1:40.000", "150cc", "shrooms")
	mustInsert(t, db, 7, "Mute City", "1:20.000", "200cc", "shrooms")
	mustInsert(t, db, 7, "Mute City", "1:45.000", "150cc", "no_items")

	exact, err := AllFor(db, 7, "Mute City", "150cc", "shrooms")
	if err != nil {
		t.Fatal(err)
	}
	if len(exact) != 1 {
		t.Errorf("exact key: got %d records, want 1", len(exact))
	}

	anyItems, err := AllFor(db, 7, "Mute City", "150cc", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(anyItems) != 2 {
		t.Errorf("mode only: got %d records, want 2", len(anyItems))
	}

	all, err := AllFor(db, 7, "Mute City", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("no filters: got %d records, want 3", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].TotalMillis() > all[i].TotalMillis() {
			t.Errorf("AllFor not ascending at %d: %d > %d", i, all[i-1].TotalMillis(), all[i].TotalMillis())
		}
	}
}

func TestTopForAndSecondFor(t *testing.T) {
	db := setupTestDB(t)

	mustInsert(t, db, 7, "Electrodrome", "1:50.000", "150cc", "shrooms")
	mustInsert(t, db, 8, "Electrodrome", "1:48.000", "150cc", "shrooms")
	mustInsert(t, db, 9, "Electrodrome", "1:49.000", "150cc", "shrooms")

	top, err := TopFor(db, "Electrodrome", "150cc", "shrooms")
	if err != nil {
		t.Fatal(err)
	}
	if top == nil || top.UserID != 8 {
		t.Errorf("TopFor = %+v, want user 8", top)
	}

	second, err := SecondFor(db, "Electrodrome", "150cc", "shrooms", 8)
	if err != nil {
		t.Fatal(err)
	}
	if second == nil || second.UserID != 9 {
		t.Errorf("SecondFor excluding 8 = %+v, want user 9", second)
	}

	nobody, err := SecondFor(db, "Electrodrome", "200cc", "shrooms", 8)
	if err != nil {
		t.Fatal(err)
	}
	if nobody != nil {
		t.Errorf("SecondFor on empty key = %+v, want nil", nobody)
	}
}

func TestDeleteMostRecent(t *testing.T) {
	db := setupTestDB(t)

	older := models.TimeTrial{
		UserID: 7, TrackName: "Wild Woods", TimeMinutes: 1, TimeSeconds: 30,
		GameMode: "150cc", ItemsSetting: "shrooms",
		DateRecorded: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}
	newer := models.TimeTrial{
		UserID: 7, TrackName: "Wild Woods", TimeMinutes: 1, TimeSeconds: 28,
		GameMode: "150cc", ItemsSetting: "shrooms",
		DateRecorded: time.Date(2025, 10, 2, 12, 0, 0, 0, time.UTC),
	}
	if err := InsertTime(db, &older); err != nil {
		t.Fatal(err)
	}
	if err := InsertTime(db, &newer); err != nil {
		t.Fatal(err)
	}

	deleted, err := DeleteMostRecent(db, 7, "Wild Woods", "150cc", "shrooms")
	if err != nil {
		t.Fatal(err)
	}
	if deleted == nil || deleted.ID != newer.ID {
		t.Errorf("DeleteMostRecent = %+v, want id %d", deleted, newer.ID)
	}

	remaining, err := AllFor(db, 7, "Wild Woods", "150cc", "shrooms")
	if err != nil {
		t.Fatal(err)
	}
	if len(remaining) != 1 || remaining[0].ID != older.ID {
		t.Errorf("remaining = %+v, want only id %d", remaining, older.ID)
	}

	none, err := DeleteMostRecent(db, 7, "Rainbow Road", "150cc", "shrooms")
	if err != nil {
		t.Fatal(err)
	}
	if none != nil {
		t.Errorf("DeleteMostRecent on empty key = %+v, want nil", none)
	}
}

func TestDeleteAllForTrack(t *testing.T) {
	db := setupTestDB(t)

	mustInsert(t, db, 7, "Toad Harbor", "1:50.000", "150cc", "shrooms")
	mustInsert(t, db, 7, "Toad Harbor", "1:49.000", "200cc", "no_items")
	mustInsert(t, db, 7, "Water Park", "1:40.000", "150cc", "shrooms")
	mustInsert(t, db, 8, "Toad Harbor", "1:48.000", "150cc", "shrooms")

	count, err := DeleteAllForTrack(db, 7, "Toad Harbor")
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("DeleteAllForTrack removed %d, want 2 (all modes/items)", count)
	}

	otherUser, err := BestFor(db, 8, "Toad Harbor", "150cc", "shrooms")
	if err != nil {
		t.Fatal(err)
	}
	if otherUser == nil {
		t.Error("user 8's record should survive user 7's clear")
	}
}

func TestCountsAndMostPlayed(t *testing.T) {
	db := setupTestDB(t)

	mustInsert(t, db, 7, "Mount Wario", "1:55.000", "150cc", "shrooms")
	mustInsert(t, db, 7, "Mount Wario", "1:54.000", "150cc", "shrooms")
	mustInsert(t, db, 7, "Mount Wario", "1:53.000", "150cc", "shrooms")
	mustInsert(t, db, 7, "Sunshine Airport", "2:00.000", "150cc", "shrooms")
	mustInsert(t, db, 7, "Sunshine Airport", "1:10.000", "200cc", "shrooms")

	distinct, err := CountDistinctTracks(db, 7, "150cc", "shrooms")
	if err != nil {
		t.Fatal(err)
	}
	if distinct != 2 {
		t.Errorf("CountDistinctTracks = %d, want 2", distinct)
	}

	total, err := CountAll(db, 7, "150cc", "shrooms")
	if err != nil {
		t.Fatal(err)
	}
	if total != 4 {
		t.Errorf("CountAll = %d, want 4", total)
	}

	track, n, err := MostPlayedTrack(db, 7, "150cc", "shrooms")
	if err != nil {
		t.Fatal(err)
	}
	if track != "Mount Wario" || n != 3 {
		t.Errorf("MostPlayedTrack = %q/%d, want Mount Wario/3", track, n)
	}

	fastest, err := FastestAny(db, 7, "150cc", "shrooms")
	if err != nil {
		t.Fatal(err)
	}
	if fastest == nil || fastest.TrackName != "Mount Wario" || fastest.Time().Format() != "1:53.000" {
		t.Errorf("FastestAny = %+v, want Mount Wario 1:53.000", fastest)
	}

	slowest, err := SlowestAny(db, 7, "150cc", "shrooms")
	if err != nil {
		t.Fatal(err)
	}
	if slowest == nil || slowest.TrackName != "Sunshine Airport" || slowest.Time().Format() != "2:00.000" {
		t.Errorf("SlowestAny = %+v, want Sunshine Airport 2:00.000", slowest)
	}
}
