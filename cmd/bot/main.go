// Package main is the entry point for the FP Bot application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PancyStudios/FPBotGo/internal/commands"
	"github.com/PancyStudios/FPBotGo/internal/events"
	"github.com/PancyStudios/FPBotGo/pkg/config"
	"github.com/PancyStudios/FPBotGo/pkg/database"
	"github.com/PancyStudios/FPBotGo/pkg/discord"
	"github.com/PancyStudios/FPBotGo/pkg/errors"
	"github.com/PancyStudios/FPBotGo/pkg/logger"
	"github.com/PancyStudios/FPBotGo/pkg/mqtt"
	"github.com/PancyStudios/FPBotGo/pkg/web"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando FP Bot...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			err := discordClient.Stop()
			if err != nil {
				return
			}
		}
	})

	// Initialize database. The ledger and the warning migration must be
	// ready before any command runs, so a failure here is fatal.
	db, err := database.Init(cfg.DBPath)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error opening database: %v", err), "Main")
		logger.Debug(fmt.Sprintf("Database path: %s", cfg.DBPath), "Main")
		os.Exit(1)
	}
	defer func() {
		err := db.Disconnect()
		if err != nil {
			return
		}
	}()

	// Initialize MQTT
	mqttClientID := "fpbot"
	if !cfg.IsProd() {
		mqttClientID = "fpbot_canary"
	}

	mqttClient := mqtt.Init(
		cfg.MQTTHost,
		cfg.MQTTPort,
		cfg.MQTTUser,
		cfg.MQTTPassword,
		mqttClientID,
	)
	defer mqttClient.Destroy()

	// Initialize web server
	webServer := web.Init(cfg.LogsWebServerHook)
	web.SetupAPIRoutes(webServer)
	webServer.StartAsync(cfg.Port)

	// Initialize Discord client
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Register commands using the commands package
	commands.RegisterAll(discordClient)

	// Register events using the events package
	events.RegisterAll(discordClient)

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}
	defer func(discordClient *discord.ExtendedClient) {
		err := discordClient.Stop()
		if err != nil {

		}
	}(discordClient)

	logger.Success("FP Bot iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando FP Bot...", "Main")
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
