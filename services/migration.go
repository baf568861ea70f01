package services

import (
	"log"
	"time"

	"kartTrialsBot/models"

	"gorm.io/gorm"
)

// RunItemsSettingBackfill fills in items_setting on rows imported from before
// the column existed. Early databases only tracked shroom runs, so that is
// what legacy rows get. Guarded by a migration row; runs once per database.
func RunItemsSettingBackfill(db *gorm.DB) error {
	const name = "items_setting_backfill"

	var existing models.Migration
	result := db.Where("name = ?", name).First(&existing)
	if result.Error == nil && existing.ID != 0 {
		return nil
	}

	res := db.Model(&models.TimeTrial{}).
		Where("items_setting = ? OR items_setting IS NULL", "").
		Update("items_setting", "shrooms")
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		log.Printf("Backfilled items_setting on %d legacy records", res.RowsAffected)
	}

	return db.Create(&models.Migration{Name: name, ExecutedAt: time.Now()}).Error
}
