package routes

import (
	"crypto/rsa"
	"net/http"

	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries everything the HTTP layer needs; main builds one and hands it
// over so tests can wire their own.
type Deps struct {
	Cfg *configs.Config
	DB  *gorm.DB
	Hub *ws.Hub

	Auth     *controllers.AuthController
	Delivery *controllers.DeliveryController
	Browse   *controllers.RestaurantController
	Cart     *controllers.CartController
	Order    *controllers.OrderController
	Address  *controllers.AddressController
	Nit      *controllers.NitController
	Points   *controllers.PointsController
	Favorite *controllers.FavoriteController
	Wallet   *controllers.WalletController
	Admin    *controllers.AdminController
	Ws       *controllers.WsController

	PassRepo *repository.PassRepository
}

// BuildDeps wires repositories, services and controllers over the given
// database handle.
func BuildDeps(cfg *configs.Config, db *gorm.DB, hub *ws.Hub,
	appleSigner services.ManifestSigner, googleKey *rsa.PrivateKey) *Deps {

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

	deliverySvc := services.NewDeliveryService(restRepo, configs.Redis())
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo, promoRepo, addressRepo, restRepo, deliverySvc)
	pointsSvc := services.NewPointsService(db, pointsRepo, passRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo, catalogRepo, addressRepo, nitRepo, cartSvc, pointsSvc, hub)
	reviewSvc := services.NewReviewService(db, reviewRepo, orderRepo, &orderSvc.Status)
	authSvc := services.NewAuthService(cfg, userRepo)
	favSvc := services.NewFavoriteService(favRepo, catalogRepo)
	appleSvc := services.NewApplePassService(cfg.ApplePassTypeID, cfg.AppleTeamID, "Loyalty", appleSigner,
		db, passRepo, pointsRepo, userRepo)
	googleSvc := services.NewGooglePassService(cfg.GoogleIssuerID, cfg.GoogleClassID, cfg.GoogleSAEmail, googleKey,
		db, passRepo, pointsRepo, userRepo)

	return &Deps{
		Cfg: cfg, DB: db, Hub: hub,
		Auth:     controllers.NewAuthController(authSvc, userRepo),
		Delivery: controllers.NewDeliveryController(deliverySvc),
		Browse:   controllers.NewRestaurantController(restRepo, catalogRepo),
		Cart:     controllers.NewCartController(cartSvc),
		Order:    controllers.NewOrderController(orderSvc, reviewSvc),
		Address:  controllers.NewAddressController(addressRepo),
		Nit:      controllers.NewNitController(nitRepo),
		Points:   controllers.NewPointsController(pointsSvc),
		Favorite: controllers.NewFavoriteController(favSvc),
		Wallet:   controllers.NewWalletController(appleSvc, googleSvc, passRepo, cfg.JWTSecret, cfg.DownloadTTL),
		Admin:    controllers.NewAdminController(db, restRepo, promoRepo, orderRepo, orderSvc, pointsSvc, deliverySvc),
		Ws:       controllers.NewWsController(hub, cfg.JWTSecret),
		PassRepo: passRepo,
	}
}

func RegisterRoutes(r *gin.Engine, d *Deps) {
	secret := d.Cfg.JWTSecret

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// public
	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)
	api.POST("/delivery/validate", d.Delivery.Validate)
	api.GET("/restaurants", d.Browse.List)
	api.GET("/restaurants/:id", d.Browse.Get)
	api.GET("/categories", d.Browse.Categories)
	api.GET("/products", d.Browse.Products)
	api.GET("/products/:id", d.Browse.Product)
	api.GET("/combos", d.Browse.Combos)
	api.GET("/combos/:id", d.Browse.Combo)
	api.GET("/wallet/apple/download", d.Wallet.AppleDownloadByToken)
	api.GET("/ws/orders", d.Ws.Orders)

	// customer
	auth := api.Group("", middlewares.AuthMiddleware(secret))
	{
		auth.GET("/me", d.Auth.Me)
		auth.PATCH("/me", d.Auth.UpdateMe)
		auth.POST("/me/devices", d.Auth.RegisterDevice)
		auth.DELETE("/me/devices", d.Auth.DeleteDevice)

		auth.GET("/cart", d.Cart.Get)
		auth.POST("/cart/items", d.Cart.Add)
		auth.PATCH("/cart/items", d.Cart.UpdateQty)
		auth.DELETE("/cart/items", d.Cart.RemoveItem)
		auth.DELETE("/cart", d.Cart.Clear)
		auth.GET("/cart/validate", d.Cart.Validate)
		auth.PUT("/cart/service-type", d.Cart.SetServiceType)
		auth.PUT("/cart/address", d.Cart.SetDeliveryAddress)
		auth.POST("/cart/promo", d.Cart.ApplyPromo)
		auth.DELETE("/cart/promo", d.Cart.RemovePromo)

		auth.POST("/orders", d.Order.Create)
		auth.GET("/orders", d.Order.List)
		auth.GET("/orders/:id", d.Order.Detail)
		auth.POST("/orders/:id/cancel", d.Order.Cancel)
		auth.POST("/orders/:id/reorder", d.Order.Reorder)
		auth.POST("/orders/:id/review", d.Order.Review)

		auth.GET("/addresses", d.Address.List)
		auth.POST("/addresses", d.Address.Create)
		auth.PATCH("/addresses/:id", d.Address.Update)
		auth.DELETE("/addresses/:id", d.Address.Delete)
		auth.POST("/addresses/:id/default", d.Address.SetDefault)

		auth.GET("/nits", d.Nit.List)
		auth.POST("/nits", d.Nit.Create)
		auth.DELETE("/nits/:id", d.Nit.Delete)
		auth.POST("/nits/:id/default", d.Nit.SetDefault)

		auth.GET("/points", d.Points.Balance)
		auth.GET("/points/history", d.Points.History)
		auth.GET("/rewards", d.Points.Rewards)
		auth.POST("/rewards/:id/redeem", d.Points.RedeemReward)

		auth.GET("/favorites", d.Favorite.List)
		auth.POST("/favorites/toggle", d.Favorite.Toggle)
		auth.POST("/views", d.Favorite.RecordView)
		auth.GET("/views/recent", d.Favorite.RecentViews)

		auth.GET("/wallet/google/save-url", d.Wallet.GoogleSaveURL)
		auth.GET("/wallet/apple/pass", d.Wallet.AppleDownload)
		auth.POST("/wallet/apple/download-url", d.Wallet.AppleDownloadURL)
	}

	// Apple Wallet web service; auth is the pass token, not a user session.
	apple := api.Group("/wallet/apple/v1")
	{
		passAuth := middlewares.ApplePassAuth(d.PassRepo)
		apple.POST("/devices/:deviceLibraryIdentifier/registrations/:passTypeIdentifier/:serialNumber", passAuth, d.Wallet.RegisterDevice)
		apple.DELETE("/devices/:deviceLibraryIdentifier/registrations/:passTypeIdentifier/:serialNumber", passAuth, d.Wallet.UnregisterDevice)
		apple.GET("/devices/:deviceLibraryIdentifier/registrations/:passTypeIdentifier", d.Wallet.UpdatedSerials)
		apple.GET("/passes/:passTypeIdentifier/:serialNumber", passAuth, d.Wallet.LatestPass)
		apple.POST("/log", d.Wallet.Log)
	}

	// staff/admin
	admin := api.Group("/admin", middlewares.AuthMiddleware(secret, "admin", "staff"))
	{
		admin.GET("/categories", d.Admin.ListCategories)
		admin.POST("/categories", d.Admin.CreateCategory)
		admin.PATCH("/categories/:id", d.Admin.UpdateCategory)
		admin.DELETE("/categories/:id", d.Admin.DeleteCategory)

		admin.POST("/products", d.Admin.CreateProduct)
		admin.PATCH("/products/:id", d.Admin.UpdateProduct)
		admin.DELETE("/products/:id", d.Admin.DeleteProduct)
		admin.POST("/products/:id/variants", d.Admin.CreateVariant)
		admin.PATCH("/variants/:id", d.Admin.UpdateVariant)
		admin.DELETE("/variants/:id", d.Admin.DeleteVariant)
		admin.POST("/products/:id/options", d.Admin.AttachOption)
		admin.DELETE("/products/:id/options/:optionId", d.Admin.DetachOption)

		admin.POST("/options", d.Admin.CreateOption)
		admin.PATCH("/options/:id", d.Admin.UpdateOption)
		admin.DELETE("/options/:id", d.Admin.DeleteOption)
		admin.POST("/options/:id/values", d.Admin.CreateOptionValue)
		admin.PATCH("/option-values/:id", d.Admin.UpdateOptionValue)
		admin.DELETE("/option-values/:id", d.Admin.DeleteOptionValue)

		admin.POST("/combos", d.Admin.CreateCombo)
		admin.PATCH("/combos/:id", d.Admin.UpdateCombo)
		admin.DELETE("/combos/:id", d.Admin.DeleteCombo)
		admin.POST("/combos/:id/slots", d.Admin.CreateComboSlot)
		admin.DELETE("/combo-slots/:id", d.Admin.DeleteComboSlot)
		admin.POST("/combo-slots/:id/items", d.Admin.CreateComboSlotItem)
		admin.DELETE("/combo-slot-items/:id", d.Admin.DeleteComboSlotItem)

		admin.POST("/restaurants", d.Admin.CreateRestaurant)
		admin.PATCH("/restaurants/:id", d.Admin.UpdateRestaurant)
		admin.PUT("/restaurants/:id/geofence", d.Admin.UpsertGeofence)
		admin.GET("/restaurants/:id/orders", d.Admin.RestaurantOrders)

		admin.GET("/promotions", d.Admin.ListPromotions)
		admin.POST("/promotions", d.Admin.CreatePromotion)
		admin.PATCH("/promotions/:id", d.Admin.UpdatePromotion)
		admin.DELETE("/promotions/:id", d.Admin.DeletePromotion)

		admin.GET("/rewards", d.Admin.ListRewards)
		admin.POST("/rewards", d.Admin.CreateReward)
		admin.PATCH("/rewards/:id", d.Admin.UpdateReward)
		admin.DELETE("/rewards/:id", d.Admin.DeleteReward)

		admin.POST("/orders/:id/accept", d.Admin.AcceptOrder)
		admin.POST("/orders/:id/ready", d.Admin.MarkOrderReady)
		admin.POST("/orders/:id/delivered", d.Admin.MarkOrderDelivered)
		admin.POST("/orders/:id/complete", d.Admin.CompleteOrder)

		admin.POST("/points/expire", d.Admin.ExpirePoints)
	}
}
