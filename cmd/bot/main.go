package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"betbuddies/internal/commands"
	"betbuddies/internal/database"
	"betbuddies/internal/metrics"
	"betbuddies/pkg/config"
	"betbuddies/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	// The logger must be live before config.Load so configuration fatals
	// are actually printed.
	env := os.Getenv("ENV")
	if env == "" {
		env = "local"
	}
	if err := logger.Init("betbuddies", env); err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load Configuration
	config.Load()

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		logger.Log.Fatal("DISCORD_TOKEN not found in environment variables")
	}

	database.Initialize()
	defer database.DB.Close()

	// Metrics and health endpoint
	var metricsSrv *http.Server
	if config.Bot.EnableMetrics {
		metricsSrv = metrics.StartServer(config.Bot.MetricsPort, func(ctx context.Context) error {
			return database.DB.Ping()
		})
		logger.Log.Infow("metrics server started", "port", config.Bot.MetricsPort)
	} else {
		logger.Log.Info("metrics server is disabled")
	}

	// Create Discord Session
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		logger.Log.Fatalw("error creating Discord session", "error", err)
	}

	// Register Handlers
	dg.AddHandler(commands.MessageCreate)
	dg.AddHandler(commands.SlashHandler)
	dg.AddHandler(commands.ComponentsHandler)
	dg.AddHandler(commands.ModalHandler)

	// Identify Intent
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent | discordgo.IntentsGuildMembers

	// Open Websocket
	if err := dg.Open(); err != nil {
		logger.Log.Fatalw("error opening connection", "error", err)
	}

	// Register Slash Commands
	logger.Log.Info("registering slash commands...")
	for _, v := range commands.SlashCommands {
		if _, err := dg.ApplicationCommandCreate(dg.State.User.ID, "", v); err != nil {
			logger.Log.Fatalw("cannot create slash command", "command", v.Name, "error", err)
		}
	}

	logger.Log.Infow("bot is now running, press CTRL-C to exit", "bot", dg.State.User.Username)

	// Wait here until CTRL-C or other term signal is received.
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Cleanly close down the Discord session and the metrics listener.
	dg.Close()
	if metricsSrv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(ctx)
	}
}
