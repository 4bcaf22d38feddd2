package main

import (
	"context"
	"log"

	"github.com/dmitrijs2005/pharmadmin/internal/server"
	"github.com/dmitrijs2005/pharmadmin/internal/server/config"
	"github.com/joho/godotenv"
)

func main() {

	_ = godotenv.Load()

	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("app init error: %v", err)
	}

	app.Run(context.Background())
}
