package database

type Bin struct {
	ID        uint    `gorm:"primaryKey"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
	FillLevel int     `gorm:"not null"`
}

func (Bin) TableName() string {
	return "bins"
}
