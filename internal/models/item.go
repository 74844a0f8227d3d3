package models

import "time"

type Item struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"type:varchar(1000);not null" json:"description"`
	Available   bool      `gorm:"not null" json:"available"`
	OwnerID     uint      `gorm:"not null;index" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Comments []Comment `gorm:"foreignKey:ItemID" json:"comments,omitempty"`
}
