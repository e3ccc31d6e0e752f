package gamestore

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs. It avoids having to call "fmt.Sprintf(...)"
 * with the same format spec every time, potentially confusing the key format.
 */

import (
	"fmt"
	"time"

	purchase_constants "Wurder/constants/purchase"
)

func FormatGameKey(code string) string {
	return fmt.Sprintf("game:%s", code)
}

// FormatArchiveKey buckets the retention copy by years since launch,
// quarter and day of month, matching the layout the analytics jobs read.
func FormatArchiveKey(code string, at time.Time) string {
	at = at.UTC()
	years := at.Year() - purchase_constants.BaseYear
	if years < 0 {
		years = 0
	}
	quarter := int(at.Month()-1)/3 + 1
	return fmt.Sprintf("archive:%d:%d:%d:%s:1", years, quarter, at.Day(), code)
}
