package api

import (
	"net/http"

	"naturemillets-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api/v1")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/signin", h.authHandler.SignIn)
			auth.POST("/signup", h.authHandler.SignUp)
			auth.POST("/google", h.authHandler.GoogleSignIn)
			auth.POST("/refresh", h.authHandler.RefreshToken)
			auth.GET("/me", delivery.AuthMiddleware(h.authUsecase), h.authHandler.Me)
			auth.POST("/logout", h.authHandler.Logout)
		}

		// FCM routes (protected)
		fcm := api.Group("/fcm")
		fcm.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			fcm.POST("/register", h.authHandler.RegisterDevice)
			fcm.DELETE("/:token", h.authHandler.UnregisterDevice)
		}

		// Catalog routes (public)
		products := api.Group("/products")
		{
			products.GET("", h.catalogHandler.ListProducts)
			products.GET("/search", h.catalogHandler.SearchProducts)
			products.GET("/:productId", h.catalogHandler.GetProduct)
			products.GET("/:productId/reviews", h.reviewHandler.ListByProduct)
		}
		api.GET("/categories", h.catalogHandler.ListCategories)

		// Review routes (protected)
		reviews := api.Group("/products/:productId/reviews")
		reviews.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			reviews.POST("", h.reviewHandler.Submit)
			reviews.DELETE("", h.reviewHandler.Delete)
		}

		// Cart routes (protected)
		cart := api.Group("/cart")
		cart.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			cart.GET("", h.cartHandler.GetCart)
			cart.POST("/items", h.cartHandler.AddItem)
			cart.PUT("/items/:productId", h.cartHandler.UpdateItem)
			cart.DELETE("/items/:productId", h.cartHandler.RemoveItem)
			cart.DELETE("", h.cartHandler.ClearCart)
			cart.POST("/coupon", h.cartHandler.ApplyCoupon)
			cart.DELETE("/coupon", h.cartHandler.RemoveCoupon)
		}

		// Address routes (protected)
		addresses := api.Group("/addresses")
		addresses.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			addresses.GET("", h.addressHandler.List)
			addresses.POST("", h.addressHandler.Create)
			addresses.PUT("/:id", h.addressHandler.Update)
			addresses.DELETE("/:id", h.addressHandler.Delete)
			addresses.PATCH("/:id/default", h.addressHandler.SetDefault)
		}

		// Payment routes (protected)
		payments := api.Group("/payments")
		payments.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			payments.POST("/create-payment-intent", h.checkoutHandler.CreatePaymentIntent)
			payments.POST("/confirm-payment", h.checkoutHandler.ConfirmPayment)
		}

		// Order routes (protected)
		orders := api.Group("/orders")
		orders.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			orders.GET("", h.orderHandler.ListMine)
			orders.GET("/:number", h.orderHandler.GetByNumber)
			orders.POST("/:number/cancel", h.orderHandler.Cancel)
		}

		// Wishlist routes (protected)
		wishlist := api.Group("/wishlist")
		wishlist.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			wishlist.GET("", h.wishlistHandler.List)
			wishlist.POST("/:productId", h.wishlistHandler.Add)
			wishlist.DELETE("/:productId", h.wishlistHandler.Remove)
		}

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			notifications.GET("", h.notificationHandler.List)
			notifications.PATCH("/:id/read", h.notificationHandler.MarkRead)
			notifications.PATCH("/read-all", h.notificationHandler.MarkAllRead)
		}

		// Admin routes (protected + role check)
		admin := api.Group("/admin")
		admin.Use(delivery.AuthMiddleware(h.authUsecase), delivery.AdminMiddleware())
		{
			admin.GET("/stats", h.adminHandler.Stats)

			admin.POST("/products", h.catalogHandler.CreateProduct)
			admin.PUT("/products/:id", h.catalogHandler.UpdateProduct)
			admin.DELETE("/products/:id", h.catalogHandler.DeleteProduct)
			admin.POST("/categories", h.catalogHandler.CreateCategory)
			admin.DELETE("/categories/:id", h.catalogHandler.DeleteCategory)

			admin.GET("/orders", h.orderHandler.ListAll)
			admin.PATCH("/orders/:number/status", h.orderHandler.UpdateStatus)

			admin.POST("/coupons", h.cartHandler.CreateCoupon)
			admin.GET("/coupons", h.cartHandler.ListCoupons)
			admin.DELETE("/coupons/:id", h.cartHandler.DeleteCoupon)
		}
	}
}
