package models

import "time"

type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	ItemID   uint      `gorm:"not null;index" json:"item_id"`
	AuthorID uint      `gorm:"not null" json:"author_id"`
	Text     string    `gorm:"type:varchar(2000);not null" json:"text"`
	Created  time.Time `gorm:"autoCreateTime" json:"created"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}
