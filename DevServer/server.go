package DevServer

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

// Server is the reference implementation of the sales API. In production the
// API is an external service; this one exists so the console can be developed
// and integration-tested against real HTTP.
type Server struct {
	DB     *gorm.DB
	Secret string
}

func New(db *gorm.DB, secret string) *Server {
	return &Server{DB: db, Secret: secret}
}

// App builds the fiber application with every route the console consumes.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	api := app.Group("/api")

	api.Post("/auth/login", s.Login)
	api.Post("/auth/register", s.Register)
	api.Get("/auth/me", s.Verify(), s.Me)

	sales := api.Group("/sales", s.Verify())
	sales.Post("/normal", s.CreateNormalSale)
	sales.Post("/exchange", s.CreateExchangeSale)
	sales.Get("/", s.GetSales)
	sales.Get("/:id", s.GetSale)

	vehicles := api.Group("/vehicles", s.Verify())
	vehicles.Get("/new", s.GetNewVehicles)
	vehicles.Post("/new", s.CreateNewVehicle)
	vehicles.Put("/new/:id", s.UpdateNewVehicle)
	vehicles.Delete("/new/:id", s.DeleteNewVehicle)
	vehicles.Get("/used", s.GetUsedVehicles)

	dashboard := api.Group("/dashboard", s.Verify())
	dashboard.Get("/analytics", s.GetAnalytics)
	dashboard.Get("/payment-alerts", s.GetPaymentAlerts)

	notifications := api.Group("/notifications", s.Verify())
	notifications.Get("/", s.GetNotifications)
	notifications.Put("/mark-all-read", s.MarkAllNotificationsRead)
	notifications.Put("/:id/read", s.MarkNotificationRead)

	return app
}

// Listen runs the server until the process exits.
func (s *Server) Listen(addr string) error {
	log.Println("Reference API server listening on", addr)
	return s.App().Listen(addr)
}
