package models

// Profile is the optional one-to-one bio attached to a user.
type Profile struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Bio    string `gorm:"size:255" json:"bio"`
	UserID uint   `gorm:"index" json:"user_id"`
}
