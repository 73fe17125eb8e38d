package repo

import (
	"DocVault/model"
	"log"

	"gorm.io/gorm"
)

// SeedDemoUsers inserts the demo accounts on a fresh database. Items always
// reference an owner, so an empty user table would make every create fail.
func SeedDemoUsers(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		log.Printf("count users failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	users := []model.User{
		{UserName: "admin", FirstName: "Admin", LastName: "User"},
		{UserName: "john_doe", FirstName: "John", LastName: "Doe"},
		{UserName: "jane_smith", FirstName: "Jane", LastName: "Smith"},
	}
	if err := db.Create(&users).Error; err != nil {
		log.Printf("seed users failed: %v", err)
		return
	}
	log.Printf("seeded %d demo users", len(users))
}
