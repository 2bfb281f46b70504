package entity

import "time"

// Like holds the like/dislike state for one (user, post) pair. There is
// at most one Like per pair; switching like and dislike overwrites the
// existing row in place.
type Like struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	PostID    uint      `json:"post_id"`
	IsLike    bool      `json:"is_like"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
