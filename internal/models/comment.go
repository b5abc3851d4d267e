package models

import "time"

type Comment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	PostID    uint64    `gorm:"not null;index" json:"post_id"`
	AuthorID  uint64    `gorm:"not null;index" json:"author_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Post   Post    `gorm:"foreignKey:PostID" json:"post,omitempty"`
	Author Profile `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// OwnerProfileID reports the profile that owns the comment for authorization.
func (c Comment) OwnerProfileID() uint64 {
	return c.AuthorID
}
