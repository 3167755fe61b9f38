package model

import (
	"time"
)

// Transaction represents the database model for the append-only audit log.
// Rows are only ever inserted, never updated or deleted.
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"not null;index"`
	Type          string    `gorm:"not null;size:50"`
	AmountInCents int64     `gorm:"not null"`
	BalanceBefore int64     `gorm:"not null"`
	BalanceAfter  int64     `gorm:"not null"`
	RelatedUserID *uint64   `gorm:"index"`
	Comment       string    `gorm:"size:255"`
	CreatedAt     time.Time `gorm:"not null;index"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
