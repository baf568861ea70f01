package models

import (
	"gorm.io/gorm"
	"time"
)

type TimeTrial struct {
	gorm.Model
	ID               uint   `gorm:"primaryKey"`
	UserID           int64  `gorm:"index:idx_user_track_mode_items"`
	TrackName        string `gorm:"index:idx_user_track_mode_items; size:64"`
	TimeMinutes      int
	TimeSeconds      int
	TimeMilliseconds int
	GameMode         string `gorm:"index:idx_user_track_mode_items; size:16; default:150cc"`
	ItemsSetting     string `gorm:"index:idx_user_track_mode_items; size:16; default:shrooms"`
	VehicleSetup     *string
	Notes            *string
	DateRecorded     time.Time
}

// Time reassembles the stored components.
func (t *TimeTrial) Time() TimeValue {
	return TimeValue{Minutes: t.TimeMinutes, Seconds: t.TimeSeconds, Milliseconds: t.TimeMilliseconds}
}

// TotalMillis is the stored time in milliseconds, the store's sort key.
func (t *TimeTrial) TotalMillis() int {
	return t.Time().TotalMillis()
}
