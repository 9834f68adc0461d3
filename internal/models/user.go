package models

// User is a registered account. Email is unique across the table.
type User struct {
	ID    int64  `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"index;not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Role  string `gorm:"index;not null" json:"role"`
}

func (User) TableName() string { return "users" }
