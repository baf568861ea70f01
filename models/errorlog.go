package models

import (
	"gorm.io/gorm"
)

type ErrorLog struct {
	gorm.Model
	ID      uint   `gorm:"primaryKey"`
	GuildID string `gorm:"size:64"`
	Source  string `gorm:"size:32"`
	Message string
}
