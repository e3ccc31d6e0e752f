package gamestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	redis_models "Wurder/models/redis"

	"github.com/redis/go-redis/v9"
)

// ErrCodeTaken is returned when a game document already exists under the
// code being written.
var ErrCodeTaken = errors.New("game code already taken")

// ErrGameNotFound is returned when no game document exists for a code.
var ErrGameNotFound = errors.New("game not found")

// Client handles game document operations against Redis
type Client struct {
	client *redis.Client
}

// NewClient creates a new game store client instance
func NewClient(addr string, db int) *Client {
	var client *redis.Client
	if addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   db,
		})
	}
	return &Client{client: client}
}

// NewClientFromRedis wraps an existing Redis client. Used by tests that
// run against miniredis.
func NewClientFromRedis(client *redis.Client) *Client {
	return &Client{client: client}
}

// CreateGame stores a freshly purchased game document under its code.
// The write is conditional on the key not existing, so two concurrent
// purchases can never both claim the same code.
// Key format: "game:{code}"
func (c *Client) CreateGame(ctx context.Context, game *redis_models.StoredGame) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("error marshaling game data: %v", err)
	}

	ok, err := c.client.SetNX(ctx, FormatGameKey(game.Code), data, 0).Result()
	if err != nil {
		return fmt.Errorf("error creating game: %w", err)
	}
	if !ok {
		return ErrCodeTaken
	}
	return nil
}

// CodeInUse reports whether a game document exists for the given code.
func (c *Client) CodeInUse(ctx context.Context, code string) (bool, error) {
	n, err := c.client.Exists(ctx, FormatGameKey(code)).Result()
	if err != nil {
		return false, fmt.Errorf("error checking game code: %w", err)
	}
	return n > 0, nil
}

// GetGame retrieves a game document by its code.
// Key format: "game:{code}"
func (c *Client) GetGame(ctx context.Context, code string) (*redis_models.StoredGame, error) {
	data, err := c.client.Get(ctx, FormatGameKey(code)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error getting game data: %w", err)
	}

	var game redis_models.StoredGame
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, fmt.Errorf("error unmarshaling game data: %v", err)
	}
	return &game, nil
}

// ArchiveGame writes the retention copy of a game document under its
// date bucket. Plain upsert: the archive copy is independent of the
// primary record once written.
func (c *Client) ArchiveGame(ctx context.Context, game *redis_models.StoredGame) error {
	data, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("error marshaling game data: %v", err)
	}

	createdAt, err := time.Parse(time.RFC3339, game.CreatedAt)
	if err != nil {
		return fmt.Errorf("error parsing game creation time: %v", err)
	}

	key := FormatArchiveKey(game.Code, createdAt)
	if err := c.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("error archiving game: %w", err)
	}
	return nil
}

// Ping verifies the connection to Redis.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close gracefully closes the Redis connection.
func (c *Client) Close() error {
	if err := c.client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %v", err)
	}
	return nil
}
