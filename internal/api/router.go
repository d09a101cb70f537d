package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"parking-zone-gateway/config"
	"parking-zone-gateway/internal/mw"
	"parking-zone-gateway/internal/session"
	"parking-zone-gateway/internal/store"
	"parking-zone-gateway/internal/upstream"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, client *upstream.Client, sessions session.Store, s store.Store, webpushOptions *webpush.Options) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(client, sessions, s, webpushOptions)

	rateLimiter := mw.RateLimiter(
		rate.Limit(cfg.Server.RateLimitPerSec),
		cfg.Server.RateLimitBurst,
		cfg.Server.RequestIPHeader,
	)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	requireSession := mw.RequireSession(sessions)
	requireAdmin := mw.RequireAdmin()

	api := r.Group("/api")
	api.Use(mw.RequestID(), rateLimiter)
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", handler.Login)
			auth.POST("/register", handler.Register)
			auth.POST("/verify-email", handler.VerifyEmail)
			auth.POST("/resend-verification", handler.ResendVerification)
			auth.POST("/logout", handler.Logout)
		}

		user := api.Group("")
		user.Use(requireSession)
		{
			user.GET("/profile", handler.Profile)
			user.PATCH("/profile", handler.UpdateProfile)

			user.GET("/vehicles", handler.MyVehicles)
			user.POST("/vehicles", handler.CreateVehicle)

			// Slot and rate listings are identical for every user, so
			// they go through the response cache.
			user.GET("/slots", caching, handler.Slots)
			user.GET("/rates", caching, handler.Rates)

			user.GET("/bookings", handler.MyBookings)
			user.POST("/bookings", handler.CreateBooking)

			user.GET("/requests", handler.MyRequests)
			user.POST("/requests", handler.CreateRequest)

			user.POST("/verify-qr", handler.VerifyQR)

			user.GET("/watch/blocks/:block_id/slots", handler.WatchedSlots)
			user.GET("/subscriptions", handler.GetSubscription)
			user.PUT("/subscriptions", handler.PutSubscription)
			user.DELETE("/subscriptions", handler.DeleteSubscription)
			user.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
		}

		admin := api.Group("/admin")
		admin.Use(requireSession, requireAdmin)
		{
			admin.GET("/vehicles", handler.AdminVehicles)
			admin.PATCH("/vehicles/:id", handler.UpdateVehicle)
			admin.DELETE("/vehicles/:id", handler.DeleteVehicle)

			admin.GET("/bookings", handler.AdminBookings)
			admin.POST("/bookings/:id/complete", handler.CompleteBooking)
			admin.POST("/bookings/:id/cancel", handler.CancelBooking)

			admin.GET("/requests", handler.AdminRequests)
			admin.POST("/requests/:id/approve", handler.ApproveRequest)
			admin.POST("/requests/:id/reject", handler.RejectRequest)

			admin.GET("/rates/:id", handler.GetRate)
			admin.POST("/rates", handler.CreateRate)
			admin.PUT("/rates/:id", handler.UpdateRate)
			admin.DELETE("/rates/:id", handler.DeleteRate)

			admin.POST("/blocks", handler.CreateBlock)
		}
	}

	return r
}
