package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"kartTrialsBot/models"
	"kartTrialsBot/scheduler"
	"kartTrialsBot/scheduler/scheduler_jobs"
	"kartTrialsBot/services"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/xo/dburl"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func openDatabase(rawURL string) (*gorm.DB, error) {
	u, err := dburl.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing DATABASE_URL: %w", err)
	}

	var dialector gorm.Dialector
	switch u.Driver {
	case "mysql":
		dsn := u.DSN
		if !strings.Contains(dsn, "?") {
			dsn += "?charset=utf8mb4&parseTime=True&loc=Local"
		}
		dialector = mysql.Open(dsn)
	case "sqlite3":
		dialector = sqlite.Open(u.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", u.Driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment")
	}

	connString := os.Getenv("DATABASE_URL")
	if connString == "" {
		connString = "sqlite:mario_kart_times.db"
	}

	db, err = openDatabase(connString)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.TimeTrial{},
		&models.WeeklyTrial{},
		&models.WeeklySubmission{},
		&models.Guild{},
		&models.ErrorLog{},
		&models.Migration{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	if err := services.RunItemsSettingBackfill(db); err != nil {
		log.Fatalf("Error running items_setting backfill: %v", err)
	}
}

func main() {
	token := os.Getenv("DISCORD_BOT_TOKEN")
	if token == "" {
		log.Fatalf("DISCORD_BOT_TOKEN not set in environment variables")
	}

	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		log.Fatalf("Error creating Discord session: %v", err)
	}

	dg.AddHandler(interactionCreate)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		err := s.UpdateGameStatus(0, "Tracking lap times!")
		if err != nil {
			return
		}
	})

	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	err = dg.Open()
	if err != nil {
		log.Fatalf("Error opening Discord session: %v", err)
	}
	defer func(dg *discordgo.Session) {
		err := dg.Close()
		if err != nil {

		}
	}(dg)

	err = services.RegisterCommands(dg)
	if err != nil {
		log.Fatalf("Error registering commands: %v", err)
	}

	// Recover the weekly trial if the process slept through a Monday
	if err := scheduler_jobs.CheckRecovery(dg, db); err != nil {
		log.Printf("Startup recovery failed: %v", err)
	}

	scheduler.SetupCron(dg, db)

	log.Println("Bot is running. Press CTRL+C to exit.")
	select {}
}

func interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		services.HandleSlashCommand(s, i, db)
	}
}
