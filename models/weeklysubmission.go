package models

import (
	"gorm.io/gorm"
	"time"
)

// WeeklySubmission is the append-only ledger for trial cycles. Rows are never
// updated or deleted, so a closed week's leaderboard stays reproducible even
// as the main time_trials table keeps changing.
type WeeklySubmission struct {
	gorm.Model
	ID               uint `gorm:"primaryKey"`
	WeekNumber       int  `gorm:"index"`
	UserID           int64
	TrackName        string `gorm:"size:64"`
	TimeMinutes      int
	TimeSeconds      int
	TimeMilliseconds int
	GameMode         string `gorm:"size:16"`
	ItemsSetting     string `gorm:"size:16"`
	VehicleSetup     *string
	Notes            *string
	DateRecorded     time.Time
}

func (w *WeeklySubmission) Time() TimeValue {
	return TimeValue{Minutes: w.TimeMinutes, Seconds: w.TimeSeconds, Milliseconds: w.TimeMilliseconds}
}

func (w *WeeklySubmission) TotalMillis() int {
	return w.Time().TotalMillis()
}
