package configs

import (
	"log"

	"github.com/dineshnaiduavula/moviesample/entity"
	"golang.org/x/crypto/bcrypt"
)

func SeedStaff(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding staff: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.Staff{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("staff account already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	staff := entity.Staff{
		Name:         "Counter",
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
	}
	return db.Create(&staff).Error
}

// Starter menu so a fresh install has something to sell.
func SeedMenu() error {
	db := DB()
	var count int64
	if err := db.Model(&entity.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Salted Popcorn (L)", Price: 25000, Category: "Popcorn", Subcategory: "Salted", Enabled: true},
		{Name: "Caramel Popcorn (L)", Price: 30000, Category: "Popcorn", Subcategory: "Caramel", Enabled: true},
		{Name: "Veg Samosa (2 pc)", Price: 8000, Category: "Snacks", Enabled: true},
		{Name: "Cola (500ml)", Price: 9000, Category: "Beverages", Enabled: true},
		{Name: "Masala Sandwich", Price: 12000, Category: "Snacks", Enabled: true},
	}
	return db.Create(&items).Error
}
