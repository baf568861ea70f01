package recordService

import (
	"errors"

	"kartTrialsBot/models"

	"gorm.io/gorm"
)

// timeOrder sorts fastest first; equal times fall back to insertion order so
// repeated queries over identical data stay deterministic.
const timeOrder = "time_minutes * 60000 + time_seconds * 1000 + time_milliseconds ASC, id ASC"

// InsertTime appends a record. Duplicates are allowed; a user may log as many
// times per track/mode/items key as they like.
func InsertTime(db *gorm.DB, rec *models.TimeTrial) error {
	return db.Create(rec).Error
}

func firstOrNil(result *gorm.DB, rec *models.TimeTrial) (*models.TimeTrial, error) {
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return rec, nil
}

// BestFor returns the user's fastest record for the exact key, or nil.
func BestFor(db *gorm.DB, userID int64, track, mode, items string) (*models.TimeTrial, error) {
	var rec models.TimeTrial
	result := db.
		Where("user_id = ? AND track_name = ? AND game_mode = ? AND items_setting = ?", userID, track, mode, items).
		Order(timeOrder).
		First(&rec)
	return firstOrNil(result, &rec)
}

// AllFor returns the user's records for a track, fastest first. Empty mode or
// items widens the match to any value.
func AllFor(db *gorm.DB, userID int64, track, mode, items string) ([]models.TimeTrial, error) {
	query := db.Where("user_id = ? AND track_name = ?", userID, track)
	if mode != "" {
		query = query.Where("game_mode = ?", mode)
	}
	if items != "" {
		query = query.Where("items_setting = ?", items)
	}

	var recs []models.TimeTrial
	if err := query.Order(timeOrder).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// TopFor returns the fastest record for a key across all users, or nil.
func TopFor(db *gorm.DB, track, mode, items string) (*models.TimeTrial, error) {
	var rec models.TimeTrial
	result := db.
		Where("track_name = ? AND game_mode = ? AND items_setting = ?", track, mode, items).
		Order(timeOrder).
		First(&rec)
	return firstOrNil(result, &rec)
}

// SecondFor returns the fastest record for a key held by anyone other than
// excludeUser. Used to find who just got overtaken.
func SecondFor(db *gorm.DB, track, mode, items string, excludeUser int64) (*models.TimeTrial, error) {
	var rec models.TimeTrial
	result := db.
		Where("track_name = ? AND game_mode = ? AND items_setting = ? AND user_id <> ?", track, mode, items, excludeUser).
		Order(timeOrder).
		First(&rec)
	return firstOrNil(result, &rec)
}

// DeleteMostRecent removes the user's most recently logged record for the key
// and returns it, or nil if there was nothing to delete.
func DeleteMostRecent(db *gorm.DB, userID int64, track, mode, items string) (*models.TimeTrial, error) {
	var rec models.TimeTrial
	result := db.
		Where("user_id = ? AND track_name = ? AND game_mode = ? AND items_setting = ?", userID, track, mode, items).
		Order("date_recorded DESC, id DESC").
		First(&rec)
	found, err := firstOrNil(result, &rec)
	if err != nil || found == nil {
		return found, err
	}

	if err := db.Unscoped().Delete(&models.TimeTrial{}, found.ID).Error; err != nil {
		return nil, err
	}
	return found, nil
}

// DeleteAllForTrack removes every record the user has on a track, across all
// modes and items settings, and returns how many went.
func DeleteAllForTrack(db *gorm.DB, userID int64, track string) (int64, error) {
	result := db.Unscoped().
		Where("user_id = ? AND track_name = ?", userID, track).
		Delete(&models.TimeTrial{})
	return result.RowsAffected, result.Error
}

// CountDistinctTracks counts how many different tracks the user has logged
// for a mode/items pair.
func CountDistinctTracks(db *gorm.DB, userID int64, mode, items string) (int64, error) {
	var count int64
	err := db.Model(&models.TimeTrial{}).
		Where("user_id = ? AND game_mode = ? AND items_setting = ?", userID, mode, items).
		Distinct("track_name").
		Count(&count).Error
	return count, err
}

// CountAll counts every record the user has for a mode/items pair.
func CountAll(db *gorm.DB, userID int64, mode, items string) (int64, error) {
	var count int64
	err := db.Model(&models.TimeTrial{}).
		Where("user_id = ? AND game_mode = ? AND items_setting = ?", userID, mode, items).
		Count(&count).Error
	return count, err
}

// MostPlayedTrack returns the track the user has logged the most times for a
// mode/items pair, with its record count. Empty track means no records.
func MostPlayedTrack(db *gorm.DB, userID int64, mode, items string) (string, int64, error) {
	var row struct {
		TrackName string
		N         int64
	}
	result := db.Model(&models.TimeTrial{}).
		Select("track_name, COUNT(*) AS n").
		Where("user_id = ? AND game_mode = ? AND items_setting = ?", userID, mode, items).
		Group("track_name").
		Order("n DESC, track_name ASC").
		Limit(1).
		Scan(&row)
	if result.Error != nil {
		return "", 0, result.Error
	}
	return row.TrackName, row.N, nil
}

// FastestAny returns the user's single fastest record across all tracks for a
// mode/items pair, or nil.
func FastestAny(db *gorm.DB, userID int64, mode, items string) (*models.TimeTrial, error) {
	var rec models.TimeTrial
	result := db.
		Where("user_id = ? AND game_mode = ? AND items_setting = ?", userID, mode, items).
		Order(timeOrder).
		First(&rec)
	return firstOrNil(result, &rec)
}

// SlowestAny returns the user's single slowest record across all tracks for a
// mode/items pair, or nil.
func SlowestAny(db *gorm.DB, userID int64, mode, items string) (*models.TimeTrial, error) {
	var rec models.TimeTrial
	result := db.
		Where("user_id = ? AND game_mode = ? AND items_setting = ?", userID, mode, items).
		Order("time_minutes * 60000 + time_seconds * 1000 + time_milliseconds DESC, id ASC").
		First(&rec)
	return firstOrNil(result, &rec)
}
