package purchase

import "time"

// Payload is the raw purchase request body. Fields stay untyped until
// validation has looked at them; the frontend is not trusted to send
// well-formed values.
type Payload struct {
	GameName interface{} `json:"gameName"`
	Players  interface{} `json:"players"`
	Addons   interface{} `json:"addons"`
}

// NormalizedPurchase only ever comes out of a successful Validate call.
type NormalizedPurchase struct {
	Name    string
	Players int
	Addons  []string
}

// Result is what the buyer gets back: the code to share plus an echo of
// what was paid for.
type Result struct {
	Code    string   `json:"code"`
	Players int      `json:"players"`
	Addons  []string `json:"addons"`
	Price   int      `json:"price"`
}

// Clock abstracts time.Now so purchase timestamps are deterministic in
// tests.
type Clock interface {
	Now() time.Time
}

// SystemClock implements the Clock interface using the system clock
type SystemClock struct{}

// Now returns the current time
func (c *SystemClock) Now() time.Time {
	return time.Now()
}
