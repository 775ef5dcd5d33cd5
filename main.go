// @title Shakti Platform API
// @version 1.0
// @description Backend server for the Shakti digital empowerment platform for rural girls.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"shakti_backend/internal/app"
	"shakti_backend/internal/config"
	"shakti_backend/pkg/configwatcher"
	"shakti_backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "directory holding config.yaml")
	watch := flag.Bool("watch-config", false, "hot-reload the config file on change")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watch {
		go configwatcher.WatchConfig(*configPath+"/config.yaml", application.ReloadConfig)
	}

	application.Run()
}
