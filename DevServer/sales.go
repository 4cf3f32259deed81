package DevServer

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"Tractor/Models"
)

func (s *Server) CreateNormalSale(ctx *fiber.Ctx) error {
	return s.createSale(ctx, Models.SaleTypeNormal)
}

func (s *Server) CreateExchangeSale(ctx *fiber.Ctx) error {
	return s.createSale(ctx, Models.SaleTypeExchange)
}

// createSale validates and persists a sale. The server owns the derived
// total: whatever the client computed is replaced with the server's own
// derivation before the row is written. Exchange sales additionally turn the
// trade-in block into a used-vehicle row.
func (s *Server) createSale(ctx *fiber.Ctx, saleType string) error {
	var sale Models.Sale
	if err := ctx.BodyParser(&sale); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	sale.ID = 0
	sale.SaleType = saleType

	if msg := s.validateSale(&sale); msg != "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	var vehicle Models.NewVehicle
	if err := s.DB.First(&vehicle, sale.VehicleID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Selected vehicle does not exist"})
	}
	if !vehicle.IsAvailable {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Selected vehicle is no longer available"})
	}

	if saleType == Models.SaleTypeExchange {
		details := sale.UsedVehicleDetails.Data()
		sale.TotalAmount = Models.ExchangeSaleTotal(
			sale.HasLoan, sale.LoanAmount, sale.DocCharge, sale.DownPayment, details.PriceTaken)
	} else {
		sale.UsedVehicleDetails = nil
		sale.TotalAmount = Models.NormalSaleTotal(
			sale.HasLoan, sale.LoanAmount, sale.DocCharge, sale.DownPayment)
	}
	if !sale.HasLoan {
		sale.LoanAmount = 0
		sale.FinanceCompany = ""
	}

	if err := s.DB.Create(&sale).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to record sale"})
	}

	vehicle.IsAvailable = false
	s.DB.Save(&vehicle)

	if saleType == Models.SaleTypeExchange {
		details := sale.UsedVehicleDetails.Data()
		used := Models.UsedVehicle{
			Make:            details.Make,
			Model:           details.Model,
			CustomerName:    details.CustomerName,
			CustomerPhone:   details.CustomerPhone,
			CustomerAddress: datatypes.NewJSONType(details.CustomerAddress),
			PriceTaken:      details.PriceTaken,
		}
		s.DB.Create(&used)
	}

	s.notifyAdmins(ctx, &sale, vehicle.Model)

	return ctx.Status(fiber.StatusCreated).JSON(sale)
}

func (s *Server) validateSale(sale *Models.Sale) string {
	customer := sale.Customer.Data()
	switch {
	case sale.Location == "":
		return "Location is required"
	case sale.DeliveryDate.IsZero():
		return "Delivery date is required"
	case sale.Salesman == "":
		return "Salesman name is required"
	case customer.Name == "":
		return "Customer name is required"
	case customer.Phone == "":
		return "Phone number is required"
	case sale.VehicleID == 0:
		return "Vehicle selection is required"
	case sale.C2CPrice < 0, sale.Discount < 0, sale.DownPayment < 0,
		sale.LoanAmount < 0, sale.DocCharge < 0:
		return "Amounts cannot be negative"
	}
	if sale.HasLoan {
		if sale.FinanceCompany == "" {
			return "Finance company is required"
		}
		if sale.LoanAmount <= 0 {
			return "Loan amount is required"
		}
	}
	if sale.SaleType == Models.SaleTypeExchange {
		if sale.UsedVehicleDetails == nil {
			return "Trade-in vehicle details are required"
		}
		details := sale.UsedVehicleDetails.Data()
		switch {
		case details.Make == "":
			return "Vehicle make is required"
		case details.Model == "":
			return "Vehicle model is required"
		case details.CustomerName == "":
			return "Previous owner name is required"
		case details.CustomerPhone == "":
			return "Previous owner phone is required"
		case details.PriceTaken < 0:
			return "Price taken cannot be negative"
		}
	}
	return ""
}

// notifyAdmins leaves a notification for every admin whenever a sale is
// recorded.
func (s *Server) notifyAdmins(ctx *fiber.Ctx, sale *Models.Sale, vehicleModel string) {
	var admins []Models.User
	if err := s.DB.Where("role = ?", Models.RoleAdmin).Find(&admins).Error; err != nil {
		return
	}
	customer := sale.Customer.Data()
	for _, admin := range admins {
		s.DB.Create(&Models.Notification{
			UserID:  admin.ID,
			Title:   "New sale recorded",
			Message: vehicleModel + " sold to " + customer.Name + " by " + sale.Salesman,
		})
	}
}

func (s *Server) GetSales(ctx *fiber.Ctx) error {
	query := s.DB.Order("created_at desc, id desc")
	if limit, err := strconv.Atoi(ctx.Query("limit")); err == nil && limit > 0 {
		query = query.Limit(limit)
	}

	var sales []Models.Sale
	if err := query.Find(&sales).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to retrieve sales"})
	}
	return ctx.JSON(sales)
}

func (s *Server) GetSale(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid sale id"})
	}

	var sale Models.Sale
	if err := s.DB.First(&sale, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Sale not found"})
	}
	return ctx.JSON(sale)
}
