package purchase

import purchase_constants "Wurder/constants/purchase"

// CalculatePrice returns the purchase price in whole pounds: one pound
// per player slot plus a flat fee per selected add-on.
func CalculatePrice(players, addonCount int) int {
	return players*purchase_constants.PricePerPlayer + addonCount*purchase_constants.AddonPrice
}
