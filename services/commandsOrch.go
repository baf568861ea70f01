package services

import (
	"kartTrialsBot/services/guildService"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"
)

func HandleSlashCommand(s *discordgo.Session, i *discordgo.InteractionCreate, db *gorm.DB) {
	switch i.ApplicationCommandData().Name {
	case "add-time":
		AddTime(s, i, db)
	case "view-times":
		ViewTimes(s, i, db)
	case "personal-best":
		PersonalBest(s, i, db)
	case "delete-time":
		DeleteTime(s, i, db)
	case "clear-track":
		ClearTrack(s, i, db)
	case "list-tracks":
		ListTracks(s, i, db)
	case "stats":
		ShowStats(s, i, db)
	case "compare-wr-itemless":
		CompareWRItemless(s, i, db)
	case "compare-wr-shrooms":
		CompareWRShrooms(s, i, db)
	case "leaderboard":
		ShowLeaderboard(s, i, db)
	case "weekly-trial":
		ShowWeeklyTrial(s, i, db)
	case "weekly-leaderboard":
		ShowWeeklyLeaderboard(s, i, db)
	case "open-cycle":
		OpenCycleCommand(s, i, db)
	case "close-cycle":
		CloseCycleCommand(s, i, db)
	case "set-announce-channel":
		guildService.SetAnnounceChannel(s, i, db)
	}
}

func modeOption(required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "mode",
		Description: "Engine class (default 150cc)",
		Required:    required,
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: "150cc", Value: "150cc"},
			{Name: "200cc", Value: "200cc"},
		},
	}
}

func itemsOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "items",
		Description: "Items setting (default shrooms)",
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: "shrooms", Value: "shrooms"},
			{Name: "no_items", Value: "no_items"},
		},
	}
}

func trackOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "track",
		Description: "Track name (see /list-tracks)",
		Required:    true,
	}
}

func RegisterCommands(s *discordgo.Session) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "add-time",
			Description: "Add a new time trial record",
			Options: []*discordgo.ApplicationCommandOption{
				trackOption(),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "time",
					Description: "Lap time as M:SS.mmm (e.g. 1:23.456)",
					Required:    true,
				},
				modeOption(false),
				itemsOption(),
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "vehicle",
					Description: "Vehicle setup",
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "notes",
					Description: "Notes",
				},
			},
		},
		{
			Name:        "view-times",
			Description: "View your times for a specific track and mode/items",
			Options: []*discordgo.ApplicationCommandOption{
				trackOption(), modeOption(false), itemsOption(),
			},
		},
		{
			Name:        "personal-best",
			Description: "View your personal best for a specific track and mode/items",
			Options: []*discordgo.ApplicationCommandOption{
				trackOption(), modeOption(false), itemsOption(),
			},
		},
		{
			Name:        "delete-time",
			Description: "Delete your most recent time for a track/mode/items",
			Options: []*discordgo.ApplicationCommandOption{
				trackOption(), modeOption(false), itemsOption(),
			},
		},
		{
			Name:        "clear-track",
			Description: "Clear all your times for a specific track",
			Options: []*discordgo.ApplicationCommandOption{
				trackOption(),
			},
		},
		{
			Name:        "list-tracks",
			Description: "List all 96 Mario Kart 8 Deluxe tracks",
		},
		{
			Name:        "stats",
			Description: "View your overall time trial statistics",
			Options: []*discordgo.ApplicationCommandOption{
				modeOption(false), itemsOption(),
			},
		},
		{
			Name:        "compare-wr-itemless",
			Description: "Compare your shroomless times to world records, grouped by proximity",
		},
		{
			Name:        "compare-wr-shrooms",
			Description: "Compare your shrooms times to world records, grouped by proximity",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "cc",
					Description: "Engine class (default 150cc)",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "150cc", Value: "150cc"},
						{Name: "200cc", Value: "200cc"},
					},
				},
			},
		},
		{
			Name:        "leaderboard",
			Description: "Fastest time per track across all racers",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "track",
					Description: "Show a single track instead of the full board",
				},
				modeOption(false), itemsOption(),
			},
		},
		{
			Name:        "weekly-trial",
			Description: "Show this week's featured trial tracks",
		},
		{
			Name:        "weekly-leaderboard",
			Description: "Show a weekly trial's leaderboard",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "week",
					Description: "Week number (default: the active week)",
				},
			},
		},
		{
			Name:        "open-cycle",
			Description: "★ Open (or re-open) a weekly trial cycle (ADMIN)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "week",
					Description: "Week number (default: current week)",
				},
			},
		},
		{
			Name:        "close-cycle",
			Description: "★ Close the active weekly trial cycle (ADMIN)",
		},
		{
			Name:        "set-announce-channel",
			Description: "★ Post weekly trial announcements in this channel (ADMIN)",
		},
	}

	for _, cmd := range commands {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, "", cmd)
		if err != nil {
			return err
		}
	}

	return nil
}
