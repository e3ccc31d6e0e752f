package postgres

import "time"

/*
 * 'GameHistory' records one finished game for one account. Written when
 * a player leaves or a game ends, read back on the profile page.
 */
type GameHistory struct {
	ID           string     `gorm:"primaryKey;size:36;not null"`
	UserUID      string     `gorm:"size:36;not null;index:idx_game_history_user"`
	GameID       string     `gorm:"size:6;not null"`
	GameName     string     `gorm:"size:100;default:'Unnamed Game'"`
	JoinedAt     time.Time  `gorm:"default:CURRENT_TIMESTAMP"`
	LeftAt       *time.Time
	PointsEarned int        `gorm:"default:0"`
	Kills        int        `gorm:"default:0"`
	Deaths       int        `gorm:"default:0"`
	Result       string     `gorm:"size:20;default:'loss'"`
	Role         string     `gorm:"size:20;default:'player'"`
	Guild        *string    `gorm:"size:50"`
}
