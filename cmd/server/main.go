package main

import (
	"log"

	"hris-backend/internal/config"
	"hris-backend/internal/database"
	"hris-backend/internal/routes"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}

	app := routes.New(cfg, db)

	log.Println("Servidor escuchando en el puerto:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
