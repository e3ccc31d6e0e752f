package purchase_constants

import "time"

// Game codes are short enough to read out loud across a living room, so
// the alphabet drops the characters people confuse on paper (0/O, 1/I).
const CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const CodeLength = 6

// How many candidate codes we draw before giving up on a purchase.
const CodeAttemptLimit = 40

// Flat surcharge per selected add-on, in whole pounds.
const AddonPrice = 5

// Base price is one pound per player slot.
const PricePerPlayer = 1

// Archive buckets count years from the product launch year.
const BaseYear = 2024

// Per-operation budget for talking to the game store. Anything slower
// is treated as the store being unavailable.
const StoreTimeout = 1000 * time.Millisecond
