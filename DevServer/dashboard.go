package DevServer

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"Tractor/Models"
)

// GetAnalytics aggregates the dashboard numbers. Months are grouped in Go
// rather than in SQL so the last twelve months always appear, empty or not.
func (s *Server) GetAnalytics(ctx *fiber.Ctx) error {
	var analytics Models.Analytics

	s.DB.Model(&Models.Sale{}).Count(&analytics.Sales.Total)
	s.DB.Model(&Models.Sale{}).Select("COALESCE(SUM(total_amount), 0)").Scan(&analytics.Sales.Revenue)

	if err := s.DB.Model(&Models.Sale{}).
		Select("location, COUNT(*) as count").
		Group("location").
		Order("location").
		Scan(&analytics.Sales.ByLocation).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to compute analytics"})
	}

	analytics.Sales.ByMonth = s.monthlySales()
	analytics.Sales.PaymentStatus = s.paymentStatus()

	s.DB.Model(&Models.NewVehicle{}).Where("is_available = ?", true).Count(&analytics.Inventory.NewVehicles)
	s.DB.Model(&Models.UsedVehicle{}).Count(&analytics.Inventory.UsedVehicles)

	return ctx.JSON(analytics)
}

func (s *Server) monthlySales() []Models.MonthlyCount {
	endDate := time.Now()
	startDate := endDate.AddDate(-1, 0, 0)

	var sales []Models.Sale
	s.DB.Where("created_at BETWEEN ? AND ?", startDate, endDate).Find(&sales)

	byMonth := make(map[string]*Models.MonthlyCount)
	for i := 0; i < 12; i++ {
		date := endDate.AddDate(0, -i, 0)
		key := date.Format("2006-01")
		byMonth[key] = &Models.MonthlyCount{Month: key}
	}

	for _, sale := range sales {
		key := sale.CreatedAt.Format("2006-01")
		if row, exists := byMonth[key]; exists {
			row.Count++
			row.Revenue += sale.TotalAmount
		}
	}

	months := make([]Models.MonthlyCount, 0, 12)
	for i := 11; i >= 0; i-- {
		date := endDate.AddDate(0, -i, 0)
		if row, exists := byMonth[date.Format("2006-01")]; exists {
			months = append(months, *row)
		}
	}
	return months
}

// paymentStatus splits the register into financed and fully paid sales.
func (s *Server) paymentStatus() []Models.StatusCount {
	var financed, paid int64
	s.DB.Model(&Models.Sale{}).Where("has_loan = ?", true).Count(&financed)
	s.DB.Model(&Models.Sale{}).Where("has_loan = ?", false).Count(&paid)
	return []Models.StatusCount{
		{Status: "financed", Count: financed},
		{Status: "paid", Count: paid},
	}
}

// GetPaymentAlerts flags financed sales by age: 30+ days overdue, 14+
// urgent, 7+ reminder. Younger sales raise no alert.
func (s *Server) GetPaymentAlerts(ctx *fiber.Ctx) error {
	var sales []Models.Sale
	if err := s.DB.Where("has_loan = ?", true).Order("created_at").Find(&sales).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to retrieve payment alerts"})
	}

	alerts := []Models.PaymentAlert{}
	now := time.Now()
	for _, sale := range sales {
		days := int(now.Sub(sale.CreatedAt).Hours() / 24)
		alertType := ""
		switch {
		case days >= 30:
			alertType = Models.AlertOverdue
		case days >= 14:
			alertType = Models.AlertUrgent
		case days >= 7:
			alertType = Models.AlertReminder
		default:
			continue
		}

		var vehicle Models.NewVehicle
		s.DB.First(&vehicle, sale.VehicleID)

		alerts = append(alerts, Models.PaymentAlert{
			ID:            sale.ID,
			AlertType:     alertType,
			Customer:      sale.Customer.Data(),
			Vehicle:       Models.VehicleRef{ID: vehicle.ID, Model: vehicle.Model},
			TotalAmount:   sale.TotalAmount,
			DaysSinceSale: days,
		})
	}

	return ctx.JSON(alerts)
}
