package scheduler_jobs

import (
	"fmt"
	"log"
	"time"

	"kartTrialsBot/services"
	"kartTrialsBot/services/guildService"
	"kartTrialsBot/services/trialService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

// RotateWeekly runs at the Monday boundary: close the finished cycle, post
// its results, open the new week's cycle and announce the featured tracks.
// Safe to fire twice; OpenCycle upserts by week number and a second
// CloseCycle finds nothing active.
func RotateWeekly(s *discordgo.Session, db *gorm.DB) error {
	now := time.Now()

	closed, err := trialService.CloseCycle(db)
	if err != nil {
		return fmt.Errorf("closing weekly cycle: %w", err)
	}
	if closed != nil {
		embed, err := services.WeeklyLeaderboardEmbed(db, closed.WeekNumber, closed.Tracks())
		if err != nil {
			return fmt.Errorf("building week %d results: %w", closed.WeekNumber, err)
		}
		broadcast(s, db, embed)
	}

	week := trialService.WeekNumberAt(now, trialService.RotationEpoch())
	trial, err := trialService.OpenCycle(db, week, now)
	if err != nil {
		return fmt.Errorf("opening weekly cycle %d: %w", week, err)
	}

	broadcast(s, db, services.TrialAnnouncementEmbed(trial.WeekNumber, trial.Tracks(), trial.EndDate))
	return nil
}

// CheckRecovery re-opens the current week's cycle if the process was asleep
// across a rotation boundary. Announces only when something actually opened.
func CheckRecovery(s *discordgo.Session, db *gorm.DB) error {
	trial, opened, err := trialService.CheckAndRecover(db, time.Now())
	if err != nil {
		return fmt.Errorf("weekly trial recovery: %w", err)
	}
	if opened {
		log.Printf("Recovered weekly trial for week %d", trial.WeekNumber)
		broadcast(s, db, services.TrialAnnouncementEmbed(trial.WeekNumber, trial.Tracks(), trial.EndDate))
	}
	return nil
}

func broadcast(s *discordgo.Session, db *gorm.DB, embed *discordgo.MessageEmbed) {
	guilds, err := guildService.AllGuilds(db)
	if err != nil {
		log.Printf("Error listing guilds for announcement: %v", err)
		return
	}
	for _, guild := range guilds {
		if guild.AnnounceChannelID == "" {
			continue
		}
		_, err := s.ChannelMessageSendEmbed(guild.AnnounceChannelID, embed)
		if err != nil {
			log.Printf("Error announcing to guild %s: %v", guild.GuildID, err)
		}
	}
}
