package models

// Comment is a reply on a post. The has-many side on User and Post is
// authoritative; a comment only carries the owning foreign keys.
type Comment struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Content string `gorm:"size:255" json:"content"`
	PostID  uint   `gorm:"index" json:"post_id"`
	UserID  uint   `gorm:"index" json:"user_id"`
}
