package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		Role:      "admin",
	}
	return db.Create(&admin).Error
}

// SeedLookups inserts the order status rows the transition guard keys on.
func SeedLookups() error {
	return SeedStatusRows(DB())
}

func SeedStatusRows(db *gorm.DB) error {
	for _, name := range []string{"Created", "Preparing", "Ready", "Delivered", "Completed", "Cancelled"} {
		if err := db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
