package Models

import "time"

// Roles understood by the platform. The server is the source of truth for a
// user's role; the client never fabricates one.
const (
	RoleAdmin        = "admin"
	RoleSalesManager = "sales_manager"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	Password  []byte    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"not null;default:sales_manager"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
