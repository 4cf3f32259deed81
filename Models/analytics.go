package Models

// Everything in this file is computed server-side and read-only for clients.

const (
	AlertOverdue  = "overdue"
	AlertUrgent   = "urgent"
	AlertReminder = "reminder"
)

// PaymentAlert flags a financed sale that needs follow-up.
type PaymentAlert struct {
	ID            uint         `json:"id"`
	AlertType     string       `json:"alertType"`
	Customer      CustomerInfo `json:"customer"`
	Vehicle       VehicleRef   `json:"vehicle"`
	TotalAmount   float64      `json:"totalAmount"`
	DaysSinceSale int          `json:"daysSinceSale"`
}

type VehicleRef struct {
	ID    uint   `json:"id"`
	Model string `json:"model"`
}

type Analytics struct {
	Sales     SalesAnalytics     `json:"sales"`
	Inventory InventoryAnalytics `json:"inventory"`
}

type SalesAnalytics struct {
	Total         int64           `json:"total"`
	Revenue       float64         `json:"revenue"`
	ByLocation    []LocationCount `json:"byLocation"`
	ByMonth       []MonthlyCount  `json:"byMonth"`
	PaymentStatus []StatusCount   `json:"paymentStatus"`
}

type InventoryAnalytics struct {
	NewVehicles  int64 `json:"newVehicles"`
	UsedVehicles int64 `json:"usedVehicles"`
}

type LocationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

type MonthlyCount struct {
	Month   string  `json:"month"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
