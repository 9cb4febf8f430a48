package api

import (
	addressdelivery "naturemillets-backend/internal/address/delivery"
	addressusecase "naturemillets-backend/internal/address/usecase"
	admindelivery "naturemillets-backend/internal/admin/delivery"
	authdelivery "naturemillets-backend/internal/auth/delivery"
	authrepo "naturemillets-backend/internal/auth/repository"
	authusecase "naturemillets-backend/internal/auth/usecase"
	cartdelivery "naturemillets-backend/internal/cart/delivery"
	cartusecase "naturemillets-backend/internal/cart/usecase"
	catalogdelivery "naturemillets-backend/internal/catalog/delivery"
	catalogrepo "naturemillets-backend/internal/catalog/repository"
	catalogusecase "naturemillets-backend/internal/catalog/usecase"
	checkoutdelivery "naturemillets-backend/internal/checkout/delivery"
	checkoutusecase "naturemillets-backend/internal/checkout/usecase"
	"naturemillets-backend/internal/notification"
	orderdelivery "naturemillets-backend/internal/order/delivery"
	orderrepo "naturemillets-backend/internal/order/repository"
	orderusecase "naturemillets-backend/internal/order/usecase"
	reviewdelivery "naturemillets-backend/internal/review/delivery"
	reviewusecase "naturemillets-backend/internal/review/usecase"
	wishlistdelivery "naturemillets-backend/internal/wishlist/delivery"
	wishlistusecase "naturemillets-backend/internal/wishlist/usecase"
	"naturemillets-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	config      *config.Config
	authUsecase authusecase.AuthUsecase

	authHandler         *authdelivery.AuthHandler
	catalogHandler      *catalogdelivery.CatalogHandler
	cartHandler         *cartdelivery.CartHandler
	addressHandler      *addressdelivery.AddressHandler
	checkoutHandler     *checkoutdelivery.CheckoutHandler
	orderHandler        *orderdelivery.OrderHandler
	reviewHandler       *reviewdelivery.ReviewHandler
	wishlistHandler     *wishlistdelivery.WishlistHandler
	notificationHandler *notification.Handler
	adminHandler        *admindelivery.AdminHandler
}

// Deps carries everything the API surface needs, wired in main.
type Deps struct {
	Config           *config.Config
	AuthUsecase      authusecase.AuthUsecase
	CatalogUsecase   catalogusecase.CatalogUsecase
	CartUsecase      cartusecase.CartUsecase
	AddressUsecase   addressusecase.AddressUsecase
	CheckoutUsecase  checkoutusecase.CheckoutUsecase
	OrderUsecase     orderusecase.OrderUsecase
	ReviewUsecase    reviewusecase.ReviewUsecase
	WishlistUsecase  wishlistusecase.WishlistUsecase
	NotificationRepo notification.Repository
	UserRepo         authrepo.UserRepository
	ProductRepo      catalogrepo.ProductRepository
	OrderRepo        orderrepo.OrderRepository
}

func NewHandler(deps Deps) *Handler {
	return &Handler{
		config:              deps.Config,
		authUsecase:         deps.AuthUsecase,
		authHandler:         authdelivery.NewAuthHandler(deps.AuthUsecase),
		catalogHandler:      catalogdelivery.NewCatalogHandler(deps.CatalogUsecase),
		cartHandler:         cartdelivery.NewCartHandler(deps.CartUsecase),
		addressHandler:      addressdelivery.NewAddressHandler(deps.AddressUsecase),
		checkoutHandler:     checkoutdelivery.NewCheckoutHandler(deps.CheckoutUsecase),
		orderHandler:        orderdelivery.NewOrderHandler(deps.OrderUsecase),
		reviewHandler:       reviewdelivery.NewReviewHandler(deps.ReviewUsecase),
		wishlistHandler:     wishlistdelivery.NewWishlistHandler(deps.WishlistUsecase),
		notificationHandler: notification.NewHandler(deps.NotificationRepo),
		adminHandler:        admindelivery.NewAdminHandler(deps.UserRepo, deps.ProductRepo, deps.OrderRepo),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
