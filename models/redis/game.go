package redis

import "encoding/json"

/*
 * 'StoredGame' is the document written to the game store when a game is
 * purchased. Gameplay (players joining their slots, the game starting)
 * mutates it later through other services; purchase only ever creates it.
 */
type StoredGame struct {
	Code        string                     `json:"code"`
	Name        string                     `json:"name"`
	MaxPlayers  int                        `json:"maxPlayers"`
	PlayerSlots int                        `json:"playerSlots"`
	Price       int                        `json:"price"`
	Addons      []string                   `json:"addons"`
	CreatedAt   string                     `json:"createdAt"` // ISO 8601, UTC
	Started     bool                       `json:"started"`
	Players     map[string]json.RawMessage `json:"players"`
	Purchase    PurchaseRecord             `json:"purchase"`
}

// PurchaseRecord captures the commercial side of the transaction inside
// the game document.
type PurchaseRecord struct {
	Status      string   `json:"status"` // always "active" at creation
	PurchasedAt string   `json:"purchasedAt"`
	Addons      []string `json:"addons"`
	PlayerCount int      `json:"playerCount"`
	Amount      int      `json:"amount"`
}
