package models

import "gorm.io/gorm"

type Guild struct {
	gorm.Model
	ID                uint   `gorm:"primaryKey"`
	GuildID           string `gorm:"uniqueIndex; size:64"`
	GuildName         string
	AnnounceChannelID string `gorm:"size:64"`
}
