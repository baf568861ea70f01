package models

import (
	"gorm.io/gorm"
	"time"
)

// WeeklyTrial is one rotation cycle. At most one row may have Active=true;
// trialService enforces that inside its open/close transactions.
type WeeklyTrial struct {
	gorm.Model
	ID         uint `gorm:"primaryKey"`
	WeekNumber int  `gorm:"uniqueIndex"`
	Track1     string
	Track2     string
	Track3     string
	StartDate  time.Time
	EndDate    time.Time
	Active     bool
}

// Tracks returns the week's featured tracks in selection order.
func (w *WeeklyTrial) Tracks() [3]string {
	return [3]string{w.Track1, w.Track2, w.Track3}
}

// HasTrack reports whether name is one of the week's featured tracks.
func (w *WeeklyTrial) HasTrack(name string) bool {
	return name == w.Track1 || name == w.Track2 || name == w.Track3
}
