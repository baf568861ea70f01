package services

import (
	"fmt"
	"strconv"

	"kartTrialsBot/gamedata"
	"kartTrialsBot/services/common"
	"kartTrialsBot/services/leaderboardService"
	"kartTrialsBot/services/recordService"
	"kartTrialsBot/services/trialService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

// ShowLeaderboard answers /leaderboard. With a track option it shows that
// track's fastest holder; without, every track that has a record.
func ShowLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	opts := optionMap(i)
	mode := optionString(opts, "mode", "150cc")
	items := optionString(opts, "items", "shrooms")
	track := optionString(opts, "track", "")

	if !gamedata.IsValidMode(mode) || !gamedata.IsValidItems(items) {
		respondEphemeral(s, i, "❌ Invalid mode or items setting.")
		return
	}

	if track != "" {
		if !gamedata.IsValidTrack(track) {
			respondEphemeral(s, i, "❌ Invalid track name. Use `/list-tracks` to see all available tracks.")
			return
		}
		top, err := recordService.TopFor(db, track, mode, items)
		if err != nil {
			common.SendError(s, i, err, db)
			return
		}
		if top == nil {
			respondEphemeral(s, i, fmt.Sprintf("❌ No records yet for %s (%s, %s).", track, mode, items))
			return
		}
		respondEmbed(s, i, &discordgo.MessageEmbed{
			Title: fmt.Sprintf("🏆 %s (%s, %s)", track, mode, items),
			Color: 0x00ff00,
			Description: fmt.Sprintf("**%s** held by <@%d>, set %s",
				top.Time().Format(), top.UserID, top.DateRecorded.Format("2006-01-02")),
		})
		return
	}

	leaders, err := leaderboardService.GlobalLeaderboard(db, mode, items)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}

	description := ""
	for _, leader := range leaders {
		if leader.Holder == nil {
			continue
		}
		description += fmt.Sprintf("**%s** — %s by <@%d>\n",
			leader.Track, leader.Holder.Time().Format(), leader.Holder.UserID)
	}
	if description == "" {
		respondEphemeral(s, i, "No records on the leaderboard yet.")
		return
	}

	respondEmbed(s, i, &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🏆 Global Leaderboard (%s, %s)", mode, items),
		Color:       0x00ff00,
		Description: common.TruncateText(description, 4000),
	})
}

// ShowWeeklyLeaderboard answers /weekly-leaderboard for a past or current
// week, sourced from the frozen weekly ledger.
func ShowWeeklyLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	opts := optionMap(i)

	week := 0
	if opt, ok := opts["week"]; ok {
		week = int(opt.IntValue())
	} else {
		active, err := trialService.ActiveTrial(db)
		if err != nil {
			common.SendError(s, i, err, db)
			return
		}
		if active == nil {
			respondEphemeral(s, i, "❌ No weekly trial is active. Pass a week number to view past results.")
			return
		}
		week = active.WeekNumber
	}

	trial, err := trialService.TrialForWeek(db, week)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}
	if trial == nil {
		respondEphemeral(s, i, fmt.Sprintf("❌ No weekly trial found for week %d.", week))
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📅 Weekly Trial Leaderboard — Week %d", week),
		Color: 0xe67e22,
	}
	for _, track := range trial.Tracks() {
		ranked, err := leaderboardService.CycleLeaderboard(db, week, track, 10)
		if err != nil {
			common.SendError(s, i, err, db)
			return
		}
		value := "No submissions."
		if len(ranked) > 0 {
			value = ""
			for pos, sub := range ranked {
				value += fmt.Sprintf("**%d.** <@%d> — %s\n", pos+1, sub.UserID, sub.Time().Format())
			}
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: track, Value: value,
		})
	}

	respondEmbed(s, i, embed)
}

// WeeklyLeaderboardEmbed renders a closed cycle's results for the scheduled
// announcement. Shared by the cron job so the Sunday post and the slash
// command agree.
func WeeklyLeaderboardEmbed(db *gorm.DB, week int, tracks [3]string) (*discordgo.MessageEmbed, error) {
	embed := &discordgo.MessageEmbed{
		Title: "🏁 Weekly Trial Results — Week " + strconv.Itoa(week),
		Color: 0xe67e22,
	}
	for _, track := range tracks {
		ranked, err := leaderboardService.CycleLeaderboard(db, week, track, 10)
		if err != nil {
			return nil, err
		}
		value := "No submissions."
		if len(ranked) > 0 {
			value = ""
			for pos, sub := range ranked {
				value += fmt.Sprintf("**%d.** <@%d> — %s\n", pos+1, sub.UserID, sub.Time().Format())
			}
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: track, Value: value,
		})
	}
	return embed, nil
}
