package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"kartTrialsBot/gamedata"
	"kartTrialsBot/services/common"
	"kartTrialsBot/services/recordService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

func interactionUserID(i *discordgo.InteractionCreate) int64 {
	var raw string
	if i.Member != nil && i.Member.User != nil {
		raw = i.Member.User.ID
	} else if i.User != nil {
		raw = i.User.ID
	}
	id, _ := strconv.ParseInt(raw, 10, 64)
	return id
}

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}
	return m
}

func optionString(m map[string]*discordgo.ApplicationCommandInteractionDataOption, name, fallback string) string {
	if opt, ok := m[name]; ok {
		return opt.StringValue()
	}
	return fallback
}

func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

func formatSeconds(ms int) string {
	return fmt.Sprintf("%.3f", float64(ms)/1000.0)
}

func AddTime(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	opts := optionMap(i)

	in := recordService.SubmitInput{
		UserID: interactionUserID(i),
		Track:  optionString(opts, "track", ""),
		Time:   optionString(opts, "time", ""),
		Mode:   optionString(opts, "mode", "150cc"),
		Items:  optionString(opts, "items", "shrooms"),
	}
	if v := optionString(opts, "vehicle", ""); v != "" {
		in.Vehicle = &v
	}
	if n := optionString(opts, "notes", ""); n != "" {
		in.Notes = &n
	}

	result, err := recordService.SubmitTime(db, in, time.Now())
	if err != nil {
		var verr *common.ValidationError
		if errors.As(err, &verr) {
			respondEphemeral(s, i, fmt.Sprintf("❌ %v", verr))
			return
		}
		common.SendError(s, i, err, db)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "🏁 Time Trial Added!",
		Color: 0x00ff00,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Track", Value: result.Record.TrackName},
			{Name: "Time", Value: result.Record.Time().Format(), Inline: true},
			{Name: "Mode", Value: result.Record.GameMode, Inline: true},
			{Name: "Items", Value: result.Record.ItemsSetting, Inline: true},
		},
	}
	if in.Vehicle != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Vehicle Setup", Value: common.TruncateText(*in.Vehicle, 1000), Inline: true,
		})
	}
	if in.Notes != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Notes", Value: common.TruncateText(*in.Notes, 1000),
		})
	}

	pb := result.PersonalBest
	switch {
	case pb.FirstRecord:
		embed.Color = 0xffd700
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🎉 First Time on This Track!",
			Value: "This is your first recorded time for this track/mode/items setting.",
		})
	case pb.IsImprovement:
		embed.Color = 0xffd700
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🎉 New Personal Best!",
			Value: fmt.Sprintf("Improved by %s seconds!", formatSeconds(pb.DeltaMillis)),
		})
	default:
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Current PB",
			Value: fmt.Sprintf("%s (+%ss)", pb.PriorBest.Format(), formatSeconds(pb.DeltaMillis)),
		})
	}

	if result.OvertakenUserID != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "👑 New Track Leader",
			Value: fmt.Sprintf("<@%d> has been overtaken on %s!", *result.OvertakenUserID, result.Record.TrackName),
		})
	}

	if weekly := result.Weekly; weekly != nil {
		value := ""
		switch {
		case weekly.FirstRecord:
			value = fmt.Sprintf("First weekly entry for %s (week %d).", weekly.Track, weekly.WeekNumber)
		case weekly.IsImprovement:
			value = fmt.Sprintf("Weekly PB improved by %s seconds (week %d)!", formatSeconds(weekly.DeltaMillis), weekly.WeekNumber)
		default:
			value = fmt.Sprintf("Weekly PB stands at %s (week %d).", weekly.PriorBest.Format(), weekly.WeekNumber)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "📅 Weekly Trial", Value: value,
		})
	}

	respondEmbed(s, i, embed)
}

func ViewTimes(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	opts := optionMap(i)
	track := optionString(opts, "track", "")
	mode := optionString(opts, "mode", "150cc")
	items := optionString(opts, "items", "shrooms")

	if err := validateKey(track, mode, items); err != nil {
		respondEphemeral(s, i, fmt.Sprintf("❌ %v", err))
		return
	}

	recs, err := recordService.AllFor(db, interactionUserID(i), track, mode, items)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}
	if len(recs) == 0 {
		respondEphemeral(s, i, fmt.Sprintf("❌ No times found for %s in %s mode (%s).", track, mode, items))
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📜 Times for %s (%s, %s)", track, mode, items),
		Color: 0x3498db,
	}
	for idx, rec := range recs {
		value := fmt.Sprintf("⏱ %s | 🗓 %s", rec.Time().Format(), rec.DateRecorded.Format("2006-01-02"))
		if rec.VehicleSetup != nil && *rec.VehicleSetup != "" {
			value += " | 🚗 " + common.TruncateText(*rec.VehicleSetup, 50)
		}
		if rec.Notes != nil && *rec.Notes != "" {
			value += " | 📝 " + common.TruncateText(*rec.Notes, 50)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%d.", idx+1), Value: value,
		})
	}

	respondEmbed(s, i, embed)
}

func PersonalBest(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	opts := optionMap(i)
	track := optionString(opts, "track", "")
	mode := optionString(opts, "mode", "150cc")
	items := optionString(opts, "items", "shrooms")

	if err := validateKey(track, mode, items); err != nil {
		respondEphemeral(s, i, fmt.Sprintf("❌ %v", err))
		return
	}

	best, err := recordService.BestFor(db, interactionUserID(i), track, mode, items)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}
	if best == nil {
		respondEphemeral(s, i, fmt.Sprintf("❌ No records found for %s in %s mode (%s).", track, mode, items))
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "🏆 Personal Best",
		Color: 0xffd700,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Track", Value: best.TrackName},
			{Name: "Mode", Value: best.GameMode, Inline: true},
			{Name: "Items", Value: best.ItemsSetting, Inline: true},
			{Name: "Time", Value: best.Time().Format(), Inline: true},
		},
	}
	if best.VehicleSetup != nil && *best.VehicleSetup != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Vehicle Setup", Value: common.TruncateText(*best.VehicleSetup, 1000), Inline: true,
		})
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name: "Date Recorded", Value: best.DateRecorded.Format("2006-01-02"), Inline: true,
	})
	if best.Notes != nil && *best.Notes != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Notes", Value: common.TruncateText(*best.Notes, 1000),
		})
	}

	respondEmbed(s, i, embed)
}

func DeleteTime(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	opts := optionMap(i)
	track := optionString(opts, "track", "")
	mode := optionString(opts, "mode", "150cc")
	items := optionString(opts, "items", "shrooms")

	if err := validateKey(track, mode, items); err != nil {
		respondEphemeral(s, i, fmt.Sprintf("❌ %v", err))
		return
	}

	deleted, err := recordService.DeleteMostRecent(db, interactionUserID(i), track, mode, items)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}
	if deleted == nil {
		respondEphemeral(s, i, fmt.Sprintf("❌ No records found for %s in %s mode (%s).", track, mode, items))
		return
	}

	respondEmbed(s, i, &discordgo.MessageEmbed{
		Title: "🗑️ Time Deleted",
		Color: 0xe74c3c,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Track", Value: deleted.TrackName},
			{Name: "Mode", Value: deleted.GameMode, Inline: true},
			{Name: "Items", Value: deleted.ItemsSetting, Inline: true},
			{Name: "Time", Value: deleted.Time().Format(), Inline: true},
			{Name: "Date Recorded", Value: deleted.DateRecorded.Format("2006-01-02"), Inline: true},
		},
	})
}

func ClearTrack(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	opts := optionMap(i)
	track := optionString(opts, "track", "")

	if !gamedata.IsValidTrack(track) {
		respondEphemeral(s, i, "❌ Invalid track name. Use `/list-tracks` to see all available tracks.")
		return
	}

	count, err := recordService.DeleteAllForTrack(db, interactionUserID(i), track)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}
	if count == 0 {
		respondEphemeral(s, i, fmt.Sprintf("❌ No records found for %s.", track))
		return
	}

	respondEmbed(s, i, &discordgo.MessageEmbed{
		Title: "🗑️ Track Records Cleared",
		Color: 0xff0000,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Track", Value: track},
			{Name: "Records Deleted", Value: strconv.FormatInt(count, 10), Inline: true},
			{Name: "⚠️ Warning", Value: "This action cannot be undone!"},
		},
	})
}

func ListTracks(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	embed := &discordgo.MessageEmbed{
		Title:       "🏁 All 96 Mario Kart 8 Deluxe Tracks",
		Description: "**Base Game (48) + Booster Course Pass DLC (48)**",
		Color:       0x0099ff,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Total: 96 tracks across 24 cups (12 Base Game + 12 DLC)",
		},
	}
	for idx, cup := range gamedata.CupNames {
		list := ""
		for _, track := range gamedata.CupTracks(idx) {
			list += "• " + track + "\n"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: cup, Value: list, Inline: true,
		})
	}

	_ = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

func ShowStats(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	opts := optionMap(i)
	mode := optionString(opts, "mode", "150cc")
	items := optionString(opts, "items", "shrooms")

	if !gamedata.IsValidMode(mode) || !gamedata.IsValidItems(items) {
		respondEphemeral(s, i, "❌ Invalid mode or items setting.")
		return
	}

	userID := interactionUserID(i)
	tracks, err := recordService.CountDistinctTracks(db, userID, mode, items)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}
	total, err := recordService.CountAll(db, userID, mode, items)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}
	fastest, err := recordService.FastestAny(db, userID, mode, items)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}
	slowest, err := recordService.SlowestAny(db, userID, mode, items)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}
	mostPlayed, playCount, err := recordService.MostPlayedTrack(db, userID, mode, items)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 Time Trial Stats (%s, %s)", mode, items),
		Color: 0x9b59b6,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🏁 Tracks Recorded", Value: strconv.FormatInt(tracks, 10), Inline: true},
			{Name: "📂 Total Records", Value: strconv.FormatInt(total, 10), Inline: true},
		},
	}
	if fastest != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "⚡ Fastest Time",
			Value: fmt.Sprintf("%s (%s)", fastest.Time().Format(), fastest.TrackName),
		})
	}
	if slowest != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🐢 Slowest Time",
			Value: fmt.Sprintf("%s (%s)", slowest.Time().Format(), slowest.TrackName),
		})
	}
	if mostPlayed != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🔁 Most Played Track",
			Value: fmt.Sprintf("%s (%d records)", mostPlayed, playCount),
		})
	}

	respondEmbed(s, i, embed)
}

func validateKey(track, mode, items string) error {
	if !gamedata.IsValidTrack(track) {
		return &common.ValidationError{Field: "track", Reason: "unknown track name, use /list-tracks"}
	}
	if !gamedata.IsValidMode(mode) {
		return &common.ValidationError{Field: "mode", Reason: "choose 150cc or 200cc"}
	}
	if !gamedata.IsValidItems(items) {
		return &common.ValidationError{Field: "items", Reason: "choose shrooms or no_items"}
	}
	return nil
}
