package purchase

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Validate normalizes a raw purchase payload or rejects it with a
// ValidationError. Pure function, no side effects.
func Validate(payload *Payload) (*NormalizedPurchase, error) {
	name := ""
	if s, ok := payload.GameName.(string); ok {
		name = strings.TrimSpace(s)
	}
	if name == "" {
		return nil, ErrEmptyGameName
	}

	players, ok := coercePlayers(payload.Players)
	if !ok {
		return nil, ErrInvalidPlayers
	}

	return &NormalizedPurchase{
		Name:    name,
		Players: players,
		Addons:  normalizeAddons(payload.Addons),
	}, nil
}

// coercePlayers accepts anything that reads as a positive whole number.
// JSON numbers arrive as float64; numeric strings are accepted the way
// the frontend has always sent them.
func coercePlayers(raw interface{}) (int, bool) {
	var n float64
	switch v := raw.(type) {
	case float64:
		n = v
	case int:
		n = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}

	if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) {
		return 0, false
	}
	if n <= 0 || n > math.MaxInt32 {
		return 0, false
	}
	return int(n), true
}

// normalizeAddons is deliberately lenient: anything that is not an array
// of strings just contributes nothing, it never fails the purchase.
// Order and duplicates are preserved.
func normalizeAddons(raw interface{}) []string {
	addons := []string{}

	list, ok := raw.([]interface{})
	if !ok {
		return addons
	}

	for _, entry := range list {
		s, ok := entry.(string)
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			addons = append(addons, trimmed)
		}
	}
	return addons
}
