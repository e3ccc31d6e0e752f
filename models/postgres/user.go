package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'User' contains the blueprint definition of a Wurder account. The
 * Wurder ID is the public handle players share; uniqueness is enforced
 * case-insensitively through the lowercased column.
 */
type User struct {
	UID           string         `gorm:"primaryKey;size:36;not null"`
	WurderID      string         `gorm:"size:20;not null"`
	WurderIDLower string         `gorm:"size:20;not null;uniqueIndex"`
	Email         string         `gorm:"size:100;not null;uniqueIndex"`
	PasswordHash  string         `gorm:"size:255;not null"`
	FirstName     string         `gorm:"size:100"`
	LastName      string         `gorm:"size:100"`
	Avatar        *string        `gorm:"size:255"`
	Stats         datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	ActiveGame    *string        `gorm:"size:6"`
	CreatedAt     time.Time      `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationship with finished-game records
	GameHistory []GameHistory `gorm:"foreignKey:UserUID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// NewStats is the stats block every fresh account starts with.
func NewStats() datatypes.JSON {
	return datatypes.JSON([]byte(`{"gamesPlayed":0,"kills":0,"deaths":0,"points":0,"streak":0,"mvpAwards":0}`))
}
