package main

import (
	"os"

	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/api"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/battle"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/config"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/constants"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/logging"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/service"
	"github.com/Jambi888/snowball-frenzy-site-sub000/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// Game configuration file path may be provided via FRENZY_CONFIG or
	// defaults to ./frenzy_config.json in the current working directory.
	configPath := os.Getenv(constants.EnvConfig)
	if configPath == "" {
		configPath = "./frenzy_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid game configuration", err, logging.Fields{
			"config_path": configPath,
			"hint":        "create a frenzy_config.json with an 'assistant_list' array of assistant objects (key,display_name,base_cost,cost_scale,rate) and optional battle/server sections",
		})
	}

	dbPath := os.Getenv(constants.EnvDB)
	if dbPath == "" {
		dbPath = "./frenzy.db"
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize the database", err, nil)
	}

	repo := storage.NewSQLiteRepository(db)
	catalog := service.NewCatalog(cfg.Assistants)
	sessions := service.NewBattleSessions(cfg.Battle, repo, battle.NewTimerScheduler())
	defer sessions.Shutdown()

	sessionHandler := api.NewSessionHandler(repo, cfg.ClickPower)
	playerHandler := api.NewPlayerHandler(repo, sessions, catalog)
	battleHandler := api.NewBattleHandler(repo, sessions, cfg.Battle.LedgerLimit)

	router := gin.Default()
	router.GET(constants.RouteHealth, api.Health)

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteLeaderboard, playerHandler.ListLeaderboard)
		apiRoutes.POST(constants.RouteSession, sessionHandler.CreateSession)
		apiRoutes.DELETE(constants.RouteSession, sessionHandler.DeleteSession)

		// Authenticated endpoints
		protected := apiRoutes.Group("")
		protected.Use(api.AuthRequired())

		protected.GET(constants.RoutePlayer, playerHandler.GetPlayer)
		protected.POST(constants.RouteClick, playerHandler.Click)
		protected.POST(constants.RoutePlayerBuffs, playerHandler.SetBuffs)
		protected.GET(constants.RouteAssistants, playerHandler.ListAssistants)
		protected.POST(constants.RouteAssistantsBuy, playerHandler.BuyAssistant)

		protected.GET(constants.RouteBattleState, battleHandler.GetState)
		protected.POST(constants.RouteBattleEngage, battleHandler.Engage)
		protected.GET(constants.RouteBattleLedger, battleHandler.GetLedger)
		protected.POST(constants.RouteBattleUnlock, battleHandler.SetUnlocked)
	}

	// Start server on configured address
	addr := cfg.ServerAddress
	// For logging present a http://localhost:PORT style when address starts with ':'
	displayAddr := addr
	if len(addr) > 0 && addr[0] == ':' {
		displayAddr = "http://localhost" + addr
	}
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: displayAddr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start the server", err, nil)
	}
}
