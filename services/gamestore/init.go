package gamestore

import (
	"context"
	"fmt"
	"log"
)

// InitGameStore initializes the Redis connection and basic configuration
func InitGameStore(addr string, db int) (*Client, error) {
	c := NewClient(addr, db)

	// Test connection
	if err := c.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	log.Println("Successfully connected to Redis")
	return c, nil
}
