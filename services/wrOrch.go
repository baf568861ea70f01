package services

import (
	"fmt"

	"kartTrialsBot/services/common"
	"kartTrialsBot/services/wrService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

func bucketEmbed(title, footer string, buckets map[string][]wrService.BucketEntry) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:  title,
		Color:  0x1abc9c,
		Footer: &discordgo.MessageEmbedFooter{Text: footer},
	}
	for _, label := range wrService.BucketLabels {
		value := "None"
		if entries := buckets[label]; len(entries) > 0 {
			value = ""
			for _, e := range entries {
				value += fmt.Sprintf("%s: %s (WR: %s, +%.3fs)\n",
					e.Track, e.UserTime.Format(), e.RecordTime.Format(), e.GapSeconds)
			}
			value = common.TruncateText(value, 1024)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: label, Value: value,
		})
	}
	return embed
}

func CompareWRItemless(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	buckets, err := wrService.CompareItemless(db, interactionUserID(i))
	if err != nil {
		common.SendError(s, i, err, db)
		return
	}

	respondEmbed(s, i, bucketEmbed(
		"⏱️ Your Shroomless Times vs World Records",
		"World records: Shroomless/Itemless only. Times shown are your PBs for each track.",
		buckets,
	))
}

func CompareWRShrooms(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	opts := optionMap(i)
	cc := optionString(opts, "cc", "150cc")

	buckets, err := wrService.CompareShrooms(db, interactionUserID(i), cc)
	if err != nil {
		respondEphemeral(s, i, fmt.Sprintf("❌ %v", err))
		return
	}

	respondEmbed(s, i, bucketEmbed(
		fmt.Sprintf("⏱️ Your Shrooms Times vs World Records (%s)", cc),
		"World records: Shrooms only. Times shown are your PBs for each track.",
		buckets,
	))
}
