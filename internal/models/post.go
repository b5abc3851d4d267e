package models

import "time"

type Post struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  uint64    `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Author     Profile    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Categories []Category `gorm:"many2many:post_categories" json:"categories,omitempty"`
	Tags       []Tag      `gorm:"many2many:post_tags" json:"tags,omitempty"`
	Comments   []Comment  `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// OwnerProfileID reports the profile that owns the post for authorization.
func (p Post) OwnerProfileID() uint64 {
	return p.AuthorID
}
