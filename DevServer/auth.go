package DevServer

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"Tractor/Models"
)

const tokenLifetime = 24 * time.Hour

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login verifies the credentials and issues a bearer token. Identity and role
// always come from the stored user row.
func (s *Server) Login(ctx *fiber.Ctx) error {
	var input loginInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var user Models.User
	if err := s.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}
	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(input.Password)); err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid email or password"})
	}

	claims := jwt.RegisteredClaims{
		Issuer:    strconv.FormatUint(uint64(user.ID), 10),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not create token"})
	}

	return ctx.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (s *Server) Register(ctx *fiber.Ctx) error {
	var input registerInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Username, email and password are required"})
	}

	role := input.Role
	if role != Models.RoleAdmin && role != Models.RoleSalesManager {
		role = Models.RoleSalesManager
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Could not hash password"})
	}

	user := Models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hash,
		Role:     role,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "A user with this email already exists"})
	}

	return ctx.Status(fiber.StatusCreated).JSON(user)
}

// Me returns the profile behind the presented token.
func (s *Server) Me(ctx *fiber.Ctx) error {
	user := ctx.Locals("user").(Models.User)
	return ctx.JSON(user)
}

// Verify authenticates the bearer token, loads the user and stores it in ctx
// locals for the handlers behind it.
func (s *Server) Verify() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		header := ctx.Get("Authorization")
		const prefix = "Bearer "
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not logged in"})
		}

		token, err := jwt.ParseWithClaims(header[len(prefix):], &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
			return []byte(s.Secret), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token claims"})
		}

		var user Models.User
		if err := s.DB.Where("id = ?", claims.Issuer).First(&user).Error; err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "User not found"})
		}

		ctx.Locals("user", user)
		return ctx.Next()
	}
}
