package guildService

import (
	"kartTrialsBot/models"
	"kartTrialsBot/services/common"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

func GetGuildInfo(s *discordgo.Session, db *gorm.DB, guildID string, channelId string) (*models.Guild, error) {
	var guild models.Guild
	guildResult := db.Where("guild_id = ?", guildID).First(&guild)

	if guildResult.RowsAffected == 0 {
		guildInfo, err := s.Guild(guildID)
		if err != nil {
			return nil, err
		}
		newGuild := &models.Guild{GuildID: guildID, AnnounceChannelID: channelId, GuildName: guildInfo.Name}
		newGuildResult := db.Create(newGuild)
		if newGuildResult.Error != nil {
			return nil, newGuildResult.Error
		} else {
			guild = *newGuild
		}
	}

	return &guild, nil
}

// AllGuilds lists every guild the bot has touched, for scheduled broadcasts.
func AllGuilds(db *gorm.DB) ([]models.Guild, error) {
	var guilds []models.Guild
	if err := db.Find(&guilds).Error; err != nil {
		return nil, err
	}
	return guilds, nil
}

func SetAnnounceChannel(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	if !common.IsAdmin(s, i) {
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "You are not authorized to use this command.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		if err != nil {
			common.SendError(s, i, err, db)
		}
		return
	}

	guild, err := GetGuildInfo(s, db, i.GuildID, i.ChannelID)
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}

	guild.AnnounceChannelID = i.ChannelID
	db.Save(&guild)

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Weekly trial announcements will be posted in this channel.",
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}
}
