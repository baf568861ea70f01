package services

import (
	"fmt"
	"time"

	"kartTrialsBot/services/common"
	"kartTrialsBot/services/trialService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

// ShowWeeklyTrial answers /weekly-trial with the active cycle's tracks.
func ShowWeeklyTrial(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	trial, err := trialService.ActiveTrial(db)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}
	if trial == nil {
		respondEphemeral(s, i, "❌ No weekly trial is currently active.")
		return
	}

	respondEmbed(s, i, TrialAnnouncementEmbed(trial.WeekNumber, trial.Tracks(), trial.EndDate))
}

func TrialAnnouncementEmbed(week int, tracks [3]string, endDate time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📅 Weekly Trial — Week %d", week),
		Color: 0xe67e22,
		Description: fmt.Sprintf("This week's featured tracks:\n\n🏁 **%s**\n🏁 **%s**\n🏁 **%s**\n\n"+
			"Submit 150cc shrooms times with `/add-time` before %s to appear on the weekly leaderboard!",
			tracks[0], tracks[1], tracks[2], endDate.Format("Monday, Jan 2")),
	}
}

// OpenCycleCommand is the admin override for a stuck or missed rotation.
// Week defaults to the current week.
func OpenCycleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	if !common.IsAdmin(s, i) {
		respondEphemeral(s, i, "You are not authorized to use this command.")
		return
	}

	now := time.Now()
	week := trialService.WeekNumberAt(now, trialService.RotationEpoch())
	if opt, ok := optionMap(i)["week"]; ok {
		week = int(opt.IntValue())
	}

	trial, err := trialService.OpenCycle(db, week, now)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}

	respondEmbed(s, i, TrialAnnouncementEmbed(trial.WeekNumber, trial.Tracks(), trial.EndDate))
}

// CloseCycleCommand is the admin override to end the active cycle early and
// post its results.
func CloseCycleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	if !common.IsAdmin(s, i) {
		respondEphemeral(s, i, "You are not authorized to use this command.")
		return
	}

	closed, err := trialService.CloseCycle(db)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}
	if closed == nil {
		respondEphemeral(s, i, "No weekly trial is active; nothing to close.")
		return
	}

	embed, err := WeeklyLeaderboardEmbed(db, closed.WeekNumber, closed.Tracks())
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}
	respondEmbed(s, i, embed)
}
