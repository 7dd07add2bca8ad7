package models

// Post is an article written by a user.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Title   string `gorm:"size:50" json:"title"`
	Content string `gorm:"size:100" json:"content"`
	UserID  uint   `gorm:"index" json:"user_id"`

	Comments []Comment `gorm:"foreignKey:PostID" json:"-"`
}
