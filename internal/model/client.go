package model

type Client struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"type:varchar(255);not null;index" json:"name"`
	Phone string  `gorm:"type:varchar(50)" json:"phone"`
	Email *string `gorm:"type:varchar(255);uniqueIndex" json:"email"`

	Vehicles []Vehicle `gorm:"foreignKey:ClientID" json:"vehicles,omitempty"`
}

func (Client) TableName() string {
	return "clients"
}
