package Models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	SaleTypeNormal   = "normal"
	SaleTypeExchange = "exchange"
)

// Address is the customer address block carried on sales and trade-ins.
// Every field is optional.
type Address struct {
	FlatNo   string `json:"flatNo"`
	Street   string `json:"street"`
	District string `json:"district"`
	City     string `json:"city"`
	State    string `json:"state"`
}

type CustomerInfo struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

// UsedVehicleInfo is the trade-in block submitted with an exchange sale. The
// server turns it into a UsedVehicle row.
type UsedVehicleInfo struct {
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	CustomerName    string  `json:"customerName"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress Address `json:"customerAddress"`
	PriceTaken      float64 `json:"priceTaken"`
}

// Sale is a recorded tractor sale. TotalAmount is always recomputed
// server-side from the other numeric fields; whatever the client sends for it
// is advisory only.
type Sale struct {
	ID                 uint                                 `json:"id" gorm:"primaryKey"`
	SaleType           string                               `json:"saleType" gorm:"not null;index"`
	Location           string                               `json:"location" gorm:"not null"`
	DeliveryDate       time.Time                            `json:"deliveryDate" gorm:"not null"`
	Salesman           string                               `json:"salesman" gorm:"not null"`
	Customer           datatypes.JSONType[CustomerInfo]     `json:"customer"`
	VehicleID          uint                                 `json:"vehicle" gorm:"not null;index"`
	C2CPrice           float64                              `json:"c2cPrice" gorm:"not null"`
	Discount           float64                              `json:"discount"`
	DownPayment        float64                              `json:"downPayment" gorm:"not null"`
	HasLoan            bool                                 `json:"hasLoan"`
	FinanceCompany     string                               `json:"financeCompany"`
	LoanAmount         float64                              `json:"loanAmount"`
	Mas                bool                                 `json:"mas"`
	DocCharge          float64                              `json:"docCharge"`
	TotalAmount        float64                              `json:"totalAmount"`
	UsedVehicleDetails *datatypes.JSONType[UsedVehicleInfo] `json:"usedVehicleDetails,omitempty"`
	CreatedAt          time.Time                            `json:"createdAt"`
	UpdatedAt          time.Time                            `json:"-"`
}

// NormalSaleTotal derives the payable amount of a normal sale. A sale without
// a loan contributes nothing from the loan amount, whatever value it holds.
func NormalSaleTotal(hasLoan bool, loanAmount, docCharge, downPayment float64) float64 {
	if !hasLoan {
		loanAmount = 0
	}
	return loanAmount + docCharge + downPayment
}

// ExchangeSaleTotal derives the payable amount of an exchange sale. The
// trade-in credit can bring the total to zero but never below it.
func ExchangeSaleTotal(hasLoan bool, loanAmount, docCharge, downPayment, priceTaken float64) float64 {
	total := NormalSaleTotal(hasLoan, loanAmount, docCharge, downPayment) - priceTaken
	if total < 0 {
		return 0
	}
	return total
}
