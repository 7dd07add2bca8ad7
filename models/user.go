package models

// User is an account that authors posts and comments. Username uniqueness
// is enforced by the storage layer, not by handlers.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:50;uniqueIndex" json:"username"`

	Posts    []Post    `gorm:"foreignKey:UserID" json:"-"`
	Profile  *Profile  `gorm:"foreignKey:UserID" json:"-"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"-"`
}
