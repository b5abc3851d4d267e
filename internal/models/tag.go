package models

type Tag struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	Slug string `gorm:"type:varchar(255);not null" json:"slug"`

	// Relations
	Posts []Post `gorm:"many2many:post_tags" json:"posts,omitempty"`
}
