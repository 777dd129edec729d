package main

import (
	"flag"
	"log"

	"foodgram-backend/cmd/config"
	migration "foodgram-backend/cmd/database/migrate"
	"foodgram-backend/cmd/database/seed"
	"foodgram-backend/internal/utils"
)

func main() {
	migrate := flag.Bool("migrate", false, "run database migrations before starting")
	seedFile := flag.String("seed-ingredients", "", "path to an ingredient catalog JSON file to seed")
	flag.Parse()

	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if *migrate {
		if err := migration.Migrate(db); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	if *seedFile != "" {
		if err := seed.SeedIngredients(db, *seedFile); err != nil {
			log.Fatalf("failed to seed ingredients: %v", err)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to configure app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("PORT")); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
