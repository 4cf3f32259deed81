package Models

import (
	"time"

	"gorm.io/datatypes"
)

// NewVehicle is a tractor in the showroom inventory. IsAvailable flips to
// false server-side once the vehicle is referenced by a sale.
type NewVehicle struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Model       string    `json:"model" gorm:"not null"`
	Price       float64   `json:"price" gorm:"not null"`
	IsAvailable bool      `json:"isAvailable" gorm:"default:true"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
}

// UsedVehicle is a trade-in accepted as partial payment on an exchange sale.
// Rows are created only as a side effect of recording an exchange sale and
// are read-only for every client.
type UsedVehicle struct {
	ID              uint                        `json:"id" gorm:"primaryKey"`
	Make            string                      `json:"make" gorm:"not null"`
	Model           string                      `json:"model" gorm:"not null"`
	CustomerName    string                      `json:"customerName" gorm:"not null"`
	CustomerPhone   string                      `json:"customerPhone" gorm:"not null"`
	CustomerAddress datatypes.JSONType[Address] `json:"customerAddress"`
	PriceTaken      float64                     `json:"priceTaken" gorm:"not null"`
	CreatedAt       time.Time                   `json:"createdAt"`
}
