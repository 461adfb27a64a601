package services

import (
	"fmt"
	"testing"

	"backend/configs"
	"backend/entity"
	"backend/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, configs.Migrate(db))
	require.NoError(t, configs.SeedStatusRows(db))
	return db
}

type testEnv struct {
	DB       *gorm.DB
	Cart     *CartService
	Order    *OrderService
	Points   *PointsService
	Delivery *DeliveryService
	Review   *ReviewService
	Favorite *FavoriteService

	UserRepo    *repository.UserRepository
	AddressRepo *repository.AddressRepository
	NitRepo     *repository.NitRepository
	CartRepo    *repository.CartRepository
	OrderRepo   *repository.OrderRepository
	PointsRepo  *repository.PointsRepository
	PassRepo    *repository.PassRepository
	PromoRepo   *repository.PromotionRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := openTestDB(t)

	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	nitRepo := repository.NewNitRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	pointsRepo := repository.NewPointsRepository(db)
	promoRepo := repository.NewPromotionRepository(db)
	favRepo := repository.NewFavoriteRepository(db)
	passRepo := repository.NewPassRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	delivery := NewDeliveryService(restRepo, nil)
	cart := NewCartService(db, cartRepo, catalogRepo, promoRepo, addressRepo, restRepo, delivery)
	points := NewPointsService(db, pointsRepo, passRepo)
	order := NewOrderService(db, orderRepo, cartRepo, restRepo, catalogRepo, addressRepo, nitRepo, cart, points, nil)
	review := NewReviewService(db, reviewRepo, orderRepo, &order.Status)
	favorite := NewFavoriteService(favRepo, catalogRepo)

	return &testEnv{
		DB: db, Cart: cart, Order: order, Points: points, Delivery: delivery,
		Review: review, Favorite: favorite,
		UserRepo: userRepo, AddressRepo: addressRepo, NitRepo: nitRepo,
		CartRepo: cartRepo, OrderRepo: orderRepo, PointsRepo: pointsRepo,
		PassRepo: passRepo, PromoRepo: promoRepo,
	}
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := entity.User{Email: email, Password: "x", FirstName: "Ana", LastName: "Lopez", Role: "customer"}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

// seedRestaurant creates an active restaurant; when fenced, with a square
// delivery polygon roughly 5km around its location.
func seedRestaurant(t *testing.T, db *gorm.DB, name string, zone entity.Zone, lat, lng float64, fee int64, fenced bool) *entity.Restaurant {
	t.Helper()
	r := entity.Restaurant{
		Name: name, Address: name + " street", Zone: zone,
		Latitude: lat, Longitude: lng, Active: true, DeliveryFee: fee,
	}
	require.NoError(t, db.Create(&r).Error)
	if fenced {
		g := entity.Geofence{RestaurantID: r.ID, Vertices: []entity.GeoPoint{
			{Lat: lat - 0.05, Lng: lng - 0.05},
			{Lat: lat - 0.05, Lng: lng + 0.05},
			{Lat: lat + 0.05, Lng: lng + 0.05},
			{Lat: lat + 0.05, Lng: lng - 0.05},
		}}
		require.NoError(t, db.Create(&g).Error)
	}
	return &r
}

func seedProduct(t *testing.T, db *gorm.DB, name string, priceCapital, priceInterior int64) (*entity.Product, *entity.ProductVariant) {
	t.Helper()
	cat := entity.Category{Name: "cat-" + name, Active: true}
	require.NoError(t, db.Create(&cat).Error)
	p := entity.Product{Name: name, Available: true, CategoryID: cat.ID}
	require.NoError(t, db.Create(&p).Error)
	v := entity.ProductVariant{ProductID: p.ID, Name: "Regular", PriceCapital: priceCapital, PriceInterior: priceInterior, Default: true}
	require.NoError(t, db.Create(&v).Error)
	return &p, &v
}

// seedRequiredOption attaches a required option group with two values; the
// second value carries a price adjustment.
func seedRequiredOption(t *testing.T, db *gorm.DB, productID uint, name string, adjustment int64) (*entity.Option, []entity.OptionValue) {
	t.Helper()
	o := entity.Option{Name: name, Required: true, MaxPicks: 1}
	require.NoError(t, db.Create(&o).Error)
	vals := []entity.OptionValue{
		{OptionID: o.ID, Name: name + " A", Available: true},
		{OptionID: o.ID, Name: name + " B", PriceAdjustment: adjustment, Available: true},
	}
	require.NoError(t, db.Create(&vals).Error)
	require.NoError(t, db.Create(&entity.ProductOption{ProductID: productID, OptionID: o.ID}).Error)
	return &o, vals
}

func seedCombo(t *testing.T, db *gorm.DB, name string, priceCapital, priceInterior int64, products []*entity.Product, extra int64) (*entity.Combo, *entity.ComboSlot) {
	t.Helper()
	cb := entity.Combo{Name: name, Available: true, PriceCapital: priceCapital, PriceInterior: priceInterior}
	require.NoError(t, db.Create(&cb).Error)
	slot := entity.ComboSlot{ComboID: cb.ID, Name: "Main"}
	require.NoError(t, db.Create(&slot).Error)
	for i, p := range products {
		item := entity.ComboSlotItem{ComboSlotID: slot.ID, ProductID: p.ID}
		if i > 0 {
			item.ExtraPrice = extra
		}
		require.NoError(t, db.Create(&item).Error)
	}
	return &cb, &slot
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint, lat, lng float64) *entity.CustomerAddress {
	t.Helper()
	a := entity.CustomerAddress{UserID: userID, Street: "5a avenida", City: "Guatemala", Latitude: lat, Longitude: lng}
	require.NoError(t, db.Create(&a).Error)
	return &a
}
