package model

import (
	"time"
)

// Balance represents the database model for per-user balances. One row per
// user, created lazily on the first deposit. Amount is stored in cents.
type Balance struct {
	UserID    uint64    `gorm:"primaryKey"`
	Amount    int64     `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Balance
func (Balance) TableName() string {
	return "balances"
}
