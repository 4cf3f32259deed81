package Models

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the reference server's sqlite database and migrates the
// schema. Only the reference server calls this; the console never touches a
// database of its own.
func Connect(dbFile string) (*gorm.DB, error) {
	connection, err := gorm.Open(sqlite.Open(dbFile), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	DB = connection

	// Users and inventory first, sales reference both.
	if err := DB.AutoMigrate(
		&User{},
		&NewVehicle{},
		&UsedVehicle{},
	); err != nil {
		return nil, err
	}
	if err := DB.AutoMigrate(
		&Sale{},
		&Notification{},
	); err != nil {
		return nil, err
	}

	return DB, nil
}

// SeedUsers creates the two stock accounts on an empty database so a fresh
// checkout can log in. Passwords here are for local development only.
func SeedUsers(db *gorm.DB) {
	var count int64
	db.Model(&User{}).Count(&count)
	if count > 0 {
		return
	}

	seed := []struct {
		username, email, password, role string
	}{
		{"admin", "admin@tractor.local", "admin123", RoleAdmin},
		{"manager", "manager@tractor.local", "manager123", RoleSalesManager},
	}

	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("Failed to hash seed password:", err)
			continue
		}
		user := User{
			Username: s.username,
			Email:    s.email,
			Password: hash,
			Role:     s.role,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Println("Failed to seed user:", err)
		}
	}
	log.Println("Seeded default users")
}
