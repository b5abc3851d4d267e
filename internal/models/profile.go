package models

// Profile holds the public authoring identity of a user. Exactly one profile
// exists per user; it is created in the same transaction as the user row.
type Profile struct {
	ID             uint64  `gorm:"primarykey" json:"id"`
	UserID         uint64  `gorm:"uniqueIndex;not null" json:"user_id"`
	Bio            *string `gorm:"type:text" json:"bio"`
	ProfilePicture *string `gorm:"type:varchar(1024)" json:"profile_picture"`

	// Relations
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Posts    []Post    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
	Comments []Comment `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}
