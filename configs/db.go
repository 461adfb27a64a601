package configs

import (
	"backend/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), &gorm.Config{})
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	}
	if err != nil {
		panic("failed to connect database: " + err.Error())
	}
	db = database
}

func SetupDatabase() {
	if err := Migrate(db); err != nil {
		panic(err)
	}
}

// Migrate is shared with tests, which run against an in-memory sqlite.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&entity.Product{}, "Options", &entity.ProductOption{}); err != nil {
		return err
	}
	if err := db.SetupJoinTable(&entity.Option{}, "Products", &entity.ProductOption{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&entity.User{}, &entity.CustomerAddress{}, &entity.CustomerNit{}, &entity.Device{},
		&entity.Restaurant{}, &entity.Geofence{},
		&entity.Category{}, &entity.Product{}, &entity.ProductVariant{},
		&entity.Option{}, &entity.OptionValue{},
		&entity.Combo{}, &entity.ComboSlot{}, &entity.ComboSlotItem{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemSelection{}, &entity.CartItemComboSelection{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{}, &entity.OrderItemSelection{}, &entity.OrderItemComboSelection{},
		&entity.OrderStatusHistory{}, &entity.OrderReview{},
		&entity.PointsTransaction{}, &entity.Reward{},
		&entity.Favorite{}, &entity.ProductView{},
		&entity.Promotion{},
		&entity.WalletPass{}, &entity.PassRegistration{},
	)
}
