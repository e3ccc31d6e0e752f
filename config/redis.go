package config

import (
	"log"
	"os"

	"Wurder/services/gamestore"
)

// Connect_redis connects the game store to Redis
func Connect_redis() (*gamestore.Client, error) {
	redisUri := os.Getenv("REDIS_URL")
	if redisUri == "" {
		redisUri = "localhost:6379"
	}

	store, err := gamestore.InitGameStore(redisUri, 0)
	if err != nil {
		log.Printf("Error connecting to Redis: %v", err)
		return nil, err
	}
	log.Println("Redis connection established")
	return store, nil
}
