package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"tourism-backend/controllers"
	"tourism-backend/middleware"
	"tourism-backend/utils"
)

// Handlers groups the controllers the router dispatches to.
type Handlers struct {
	Locations    *controllers.LocationController
	Hotels       *controllers.HotelController
	Restaurants  *controllers.RestaurantController
	Reviews      *controllers.ReviewController
	Reservations *controllers.ReservationController
	Users        *controllers.UserController
	Auth         *controllers.AuthController
}

type Options struct {
	CORSOrigins []string
	// TrustedProxies are the only peers whose X-Forwarded-For is used for
	// the client IP. Empty means the socket address is always used.
	TrustedProxies  []string
	EnforceAdminAPI bool
	Tokens          *utils.TokenManager
	// AuthLimiter throttles login and register; nil disables it.
	AuthLimiter *middleware.RateLimiter
}

func parseCorsOrigins(configured []string) []string {
	origins := make([]string, 0, len(configured))
	for _, part := range configured {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires middleware and every /api route.
func SetupRouter(h Handlers, opts Options) *gin.Engine {
	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		log.Error().Err(err).Strs("trusted_proxies", opts.TrustedProxies).Msg("invalid trusted proxies; trusting none")
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.Metrics())

	origins := parseCorsOrigins(opts.CORSOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// admin guards mutating catalogue routes and the user list. With
	// enforcement off the routes are open.
	admin := []gin.HandlerFunc{}
	if opts.EnforceAdminAPI {
		admin = append(admin, middleware.AuthRequired(opts.Tokens), middleware.AdminOnly())
	}
	throttle := []gin.HandlerFunc{}
	if opts.AuthLimiter != nil {
		throttle = append(throttle, opts.AuthLimiter.Middleware())
	}

	api := r.Group("/api")
	{
		locations := api.Group("/location")
		{
			locations.GET("", h.Locations.GetLocations)
			locations.POST("", with(admin, h.Locations.CreateLocation)...)
			locations.PUT("", with(admin, h.Locations.UpdateLocation)...)
			locations.GET("/:id", h.Locations.GetLocation)
			locations.DELETE("/:id", with(admin, h.Locations.DeleteLocation)...)

			locations.GET("/:id/review", h.Reviews.GetReviews)
			locations.POST("/:id/review", h.Reviews.CreateReview)
			locations.POST("/:id/reservation", h.Reservations.CreateReservation)
		}

		hotels := api.Group("/hotel")
		{
			hotels.GET("", h.Hotels.GetHotels)
			hotels.POST("", with(admin, h.Hotels.CreateHotel)...)
			hotels.DELETE("/:id", with(admin, h.Hotels.DeleteHotel)...)
		}

		restaurants := api.Group("/restaurant")
		{
			restaurants.GET("", h.Restaurants.GetRestaurants)
			restaurants.POST("", with(admin, h.Restaurants.CreateRestaurant)...)
			restaurants.DELETE("/:id", with(admin, h.Restaurants.DeleteRestaurant)...)
		}

		users := api.Group("/users")
		{
			users.GET("", with(admin, h.Users.GetUsers)...)
			users.GET("/:id", h.Users.GetUser)
			users.GET("/:id/reservation", h.Reservations.GetUserReservations)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/register", with(throttle, h.Auth.Register)...)
			auth.POST("/login", with(throttle, h.Auth.Login)...)
			auth.GET("/me", middleware.AuthRequired(opts.Tokens), h.Auth.Me)
		}
	}

	return r
}

func with(chain []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, handler)
}
