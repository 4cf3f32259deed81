package DevServer

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Tractor/Models"
)

func (s *Server) GetNotifications(ctx *fiber.Ctx) error {
	user := ctx.Locals("user").(Models.User)

	var notifications []Models.Notification
	if err := s.DB.Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&notifications).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to retrieve notifications"})
	}
	return ctx.JSON(notifications)
}

func (s *Server) MarkNotificationRead(ctx *fiber.Ctx) error {
	user := ctx.Locals("user").(Models.User)

	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid notification id"})
	}

	var notification Models.Notification
	if err := s.DB.Where("id = ? AND user_id = ?", id, user.ID).First(&notification).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Notification not found"})
	}

	notification.IsRead = true
	s.DB.Save(&notification)
	return ctx.JSON(notification)
}

func (s *Server) MarkAllNotificationsRead(ctx *fiber.Ctx) error {
	user := ctx.Locals("user").(Models.User)

	s.DB.Model(&Models.Notification{}).
		Where("user_id = ? AND is_read = ?", user.ID, false).
		Update("is_read", true)
	return ctx.JSON(fiber.Map{"message": "All notifications marked as read"})
}
