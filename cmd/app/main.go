package main

import (
	"log"

	"github.com/bytebury/ctrunner/config"
	"github.com/bytebury/ctrunner/internal/app"
	"github.com/bytebury/ctrunner/pkg/helper"
	_ "github.com/joho/godotenv/autoload"
)

func main() {
	// Configuration
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Config error: %s", err)
	}

	if err := helper.InitTimezone(cfg.App.Timezone); err != nil {
		log.Printf("Timezone error, falling back to UTC: %s", err)
	}

	// Run
	app.Run(cfg)
}
