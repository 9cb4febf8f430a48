package main

import (
	"log"

	"naturemillets-backend/cmd/api"
	addressdomain "naturemillets-backend/internal/address/domain"
	addressrepo "naturemillets-backend/internal/address/repository"
	addressusecase "naturemillets-backend/internal/address/usecase"
	authdomain "naturemillets-backend/internal/auth/domain"
	authrepo "naturemillets-backend/internal/auth/repository"
	authusecase "naturemillets-backend/internal/auth/usecase"
	cartdomain "naturemillets-backend/internal/cart/domain"
	cartrepo "naturemillets-backend/internal/cart/repository"
	cartusecase "naturemillets-backend/internal/cart/usecase"
	catalogdomain "naturemillets-backend/internal/catalog/domain"
	catalogrepo "naturemillets-backend/internal/catalog/repository"
	catalogusecase "naturemillets-backend/internal/catalog/usecase"
	checkoutdomain "naturemillets-backend/internal/checkout/domain"
	checkoutrepo "naturemillets-backend/internal/checkout/repository"
	checkoutusecase "naturemillets-backend/internal/checkout/usecase"
	"naturemillets-backend/internal/notification"
	orderdomain "naturemillets-backend/internal/order/domain"
	orderrepo "naturemillets-backend/internal/order/repository"
	orderusecase "naturemillets-backend/internal/order/usecase"
	reviewdomain "naturemillets-backend/internal/review/domain"
	reviewrepo "naturemillets-backend/internal/review/repository"
	reviewusecase "naturemillets-backend/internal/review/usecase"
	wishlistdomain "naturemillets-backend/internal/wishlist/domain"
	wishlistrepo "naturemillets-backend/internal/wishlist/repository"
	wishlistusecase "naturemillets-backend/internal/wishlist/usecase"
	"naturemillets-backend/pkg/config"
	"naturemillets-backend/pkg/database"
	"naturemillets-backend/pkg/fcm"
	"naturemillets-backend/pkg/payment"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&authdomain.User{},
		&authdomain.RefreshToken{},
		&authdomain.DeviceToken{},
		&catalogdomain.Category{},
		&catalogdomain.Product{},
		&cartdomain.CartItem{},
		&cartdomain.AppliedCoupon{},
		&cartdomain.Coupon{},
		&addressdomain.Address{},
		&checkoutdomain.PaymentRecord{},
		&orderdomain.Order{},
		&orderdomain.OrderItem{},
		&reviewdomain.Review{},
		&wishlistdomain.WishlistItem{},
		&notification.Notification{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Repositories
	userRepo := authrepo.NewUserRepository(db)
	deviceRepo := authrepo.NewDeviceTokenRepository(db)
	productRepo := catalogrepo.NewProductRepository(db)
	categoryRepo := catalogrepo.NewCategoryRepository(db)
	cartRepo := cartrepo.NewCartRepository(db)
	couponRepo := cartrepo.NewCouponRepository(db)
	addressRepo := addressrepo.NewAddressRepository(db)
	paymentRepo := checkoutrepo.NewPaymentRepository(db)
	ordersRepo := orderrepo.NewOrderRepository(db)
	reviewRepo := reviewrepo.NewReviewRepository(db)
	wishlistRepo := wishlistrepo.NewWishlistRepository(db)
	notificationRepo := notification.NewRepository(db)

	// Push notifications are optional: without credentials the service
	// still persists in-app notifications.
	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[WARN] FCM disabled, failed to initialize client: %v", err)
			fcmClient = nil
		}
	} else {
		log.Println("[WARN] FIREBASE_CREDENTIALS not set, push notifications disabled")
	}

	notifier := notification.NewService(notificationRepo, deviceRepo, fcmClient)

	// Usecases
	authUc := authusecase.NewAuthUsecase(userRepo, deviceRepo, cfg)
	catalogUc := catalogusecase.NewCatalogUsecase(productRepo, categoryRepo)
	cartUc := cartusecase.NewCartUsecase(cartRepo, couponRepo, productRepo)
	addressUc := addressusecase.NewAddressUsecase(addressRepo)
	orderUc := orderusecase.NewOrderUsecase(ordersRepo, notifier)
	reviewUc := reviewusecase.NewReviewUsecase(reviewRepo, productRepo)
	wishlistUc := wishlistusecase.NewWishlistUsecase(wishlistRepo, productRepo)

	provider := payment.NewStripeProvider(cfg.StripeSecretKey)
	checkoutUc := checkoutusecase.NewCheckoutUsecase(cartUc, addressRepo, paymentRepo, ordersRepo, provider, notifier)

	handler := api.NewHandler(api.Deps{
		Config:           cfg,
		AuthUsecase:      authUc,
		CatalogUsecase:   catalogUc,
		CartUsecase:      cartUc,
		AddressUsecase:   addressUc,
		CheckoutUsecase:  checkoutUc,
		OrderUsecase:     orderUc,
		ReviewUsecase:    reviewUc,
		WishlistUsecase:  wishlistUc,
		NotificationRepo: notificationRepo,
		UserRepo:         userRepo,
		ProductRepo:      productRepo,
		OrderRepo:        ordersRepo,
	})

	log.Printf("Starting server on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
