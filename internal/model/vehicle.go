package model

// Vehicle belongs to a Client. Plate is stored in canonical form
// (trimmed, uppercased) and is unique across all vehicles.
type Vehicle struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientID     uint    `gorm:"not null;index" json:"client_id"`
	Model        string  `gorm:"type:varchar(100);not null" json:"model"`
	Plate        string  `gorm:"type:varchar(20);uniqueIndex;not null" json:"plate"`
	Color        string  `gorm:"type:varchar(50)" json:"color"`
	Year         int     `json:"year"`
	Observations *string `gorm:"type:text" json:"observations"`
	ImageURL     *string `gorm:"type:varchar(500)" json:"image_url"`

	Owner          *Client         `gorm:"foreignKey:ClientID" json:"owner,omitempty"`
	ServiceRecords []ServiceRecord `gorm:"foreignKey:VehicleID" json:"service_records,omitempty"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
