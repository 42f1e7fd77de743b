package main

import (
	"os"

	"github.com/DRSN-tech/luxe-couture-api/internal/app"
	config "github.com/DRSN-tech/luxe-couture-api/internal/cfg"
	"github.com/DRSN-tech/luxe-couture-api/pkg/logger"
)

//	@title			Luxe Couture API
//	@version		1.0
//	@description	Каталог и витрина магазина Luxe Couture.
//	@BasePath		/

func main() {
	log := logger.NewSlogLogger(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
