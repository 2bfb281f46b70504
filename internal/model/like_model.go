package model

import "time"

// Uniqueness of (user_id, post_id) is enforced by lookup-then-act in
// the repository, not by a database constraint; concurrent writers for
// the same pair are last-writer-wins.
type LikeModel struct {
	ID        uint `gorm:"primaryKey;autoIncrement"`
	UserID    uint `gorm:"not null;index:idx_likes_user_post"`
	PostID    uint `gorm:"not null;index:idx_likes_user_post"`
	IsLike    bool `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LikeModel) TableName() string {
	return "likes"
}
