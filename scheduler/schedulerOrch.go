package scheduler

import (
	"kartTrialsBot/scheduler/scheduler_jobs"
	"kartTrialsBot/services/common"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func SetupCron(s *discordgo.Session, db *gorm.DB) {
	cronService := cron.New(cron.WithSeconds())

	_, err := cronService.AddFunc("0 0 0 * * 1", func() {
		// Monday midnight: close last week's trial, open this week's
		err := scheduler_jobs.RotateWeekly(s, db)
		if err != nil {
			common.LogCronError(db, err)
		}
	})
	if err != nil {
		common.LogCronError(db, err)
	}

	_, err = cronService.AddFunc("0 0 */6 * * *", func() {
		// Every 6 hours: recover if the Monday firing was missed
		err := scheduler_jobs.CheckRecovery(s, db)
		if err != nil {
			common.LogCronError(db, err)
		}
	})
	if err != nil {
		common.LogCronError(db, err)
	}

	cronService.Start()
}
