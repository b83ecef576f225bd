package main

import (
	"gin-listme/infra"
	"gin-listme/models"
	"log"
)

func main() {
	infra.Initialize()

	cfg, err := infra.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db := infra.SetupDB(cfg)
	if err := db.AutoMigrate(&models.User{}, &models.Credential{}, &models.List{}, &models.Item{}); err != nil {
		panic("Failed to migrate database")
	}
}
