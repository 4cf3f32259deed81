package DevServer

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Tractor/Models"
)

func (s *Server) GetNewVehicles(ctx *fiber.Ctx) error {
	var vehicles []Models.NewVehicle
	if err := s.DB.Order("id").Find(&vehicles).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to retrieve vehicles"})
	}
	return ctx.JSON(vehicles)
}

func (s *Server) CreateNewVehicle(ctx *fiber.Ctx) error {
	var input Models.NewVehicle
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if input.Model == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Vehicle model is required"})
	}
	if input.Price < 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Price cannot be negative"})
	}

	vehicle := Models.NewVehicle{
		Model:       input.Model,
		Price:       input.Price,
		IsAvailable: true,
	}
	if err := s.DB.Create(&vehicle).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create vehicle"})
	}
	return ctx.Status(fiber.StatusCreated).JSON(vehicle)
}

func (s *Server) UpdateNewVehicle(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid vehicle id"})
	}

	var vehicle Models.NewVehicle
	if err := s.DB.First(&vehicle, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Vehicle not found"})
	}

	var input Models.NewVehicle
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if input.Model == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Vehicle model is required"})
	}
	if input.Price < 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Price cannot be negative"})
	}

	vehicle.Model = input.Model
	vehicle.Price = input.Price
	if err := s.DB.Save(&vehicle).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update vehicle"})
	}
	return ctx.JSON(vehicle)
}

func (s *Server) DeleteNewVehicle(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid vehicle id"})
	}

	var vehicle Models.NewVehicle
	if err := s.DB.First(&vehicle, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Vehicle not found"})
	}

	s.DB.Delete(&vehicle)
	return ctx.JSON(fiber.Map{"message": "Vehicle deleted successfully"})
}

func (s *Server) GetUsedVehicles(ctx *fiber.Ctx) error {
	var vehicles []Models.UsedVehicle
	if err := s.DB.Order("created_at desc").Find(&vehicles).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to retrieve used vehicles"})
	}
	return ctx.JSON(vehicles)
}
