package main

import (
	"log"

	"agridash/config"
	"agridash/controllers"
	"agridash/store"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	godotenv.Load()

	cfg := config.Load()

	db, err := config.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	r := controllers.NewRouter(cfg, st)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server exited: ", err)
	}
}
