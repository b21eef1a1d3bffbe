package models

import "time"

// Post is a short text message. Posts are immutable after creation and are
// never deleted.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"size:140;not null" json:"content"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt time.Time `json:"created_at"`

	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->;-:migration" json:"likes_count"`
	// Liked indicates whether the viewing user liked this post (computed)
	Liked bool `gorm:"->;-:migration" json:"liked"`
}
