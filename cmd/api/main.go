package main

import (
	"log"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/joho/godotenv"

	"github.com/Prathamahuja/employee-leave-management/internal/config"
	"github.com/Prathamahuja/employee-leave-management/internal/database"
	"github.com/Prathamahuja/employee-leave-management/internal/server"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	router := server.New(cfg, db, store)

	log.Printf("Server is running on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
