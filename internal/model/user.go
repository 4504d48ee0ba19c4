package model

// User is a login account. It has no relation to the business
// entities; it exists only to gate the HTML surface behind a session.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string `gorm:"type:varchar(255)" json:"full_name"`
}

func (User) TableName() string {
	return "users"
}
