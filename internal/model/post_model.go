package model

import "time"

type PostModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"not null;index"`
	Content   string
	AuthorID  uint      `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PostModel) TableName() string {
	return "posts"
}
