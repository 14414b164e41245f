package api

import (
	"log"
	stdhttp "net/http"

	intconfig "hrgsms-backend/internal/config"
	"hrgsms-backend/internal/domain"
	h "hrgsms-backend/internal/http/handlers"
	"hrgsms-backend/internal/http/middleware"
	"hrgsms-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Deps is everything the router wires into middleware and handlers.
type Deps struct {
	Env      intconfig.Env
	Verifier middleware.TokenVerifier
	Handler  *h.Handler
	Redis    *redis.Client
}

var (
	frontDesk = []domain.Role{domain.RoleAdmin, domain.RoleManager, domain.RoleReception}
	managers  = []domain.Role{domain.RoleAdmin, domain.RoleManager}
)

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(d.Env.FrontendURL))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"detail":     "Not Found",
			"request_id": middleware.GetRequestID(c),
		})
	})

	hd := d.Handler
	limit := middleware.RateLimit(d.Env.RateLimit, d.Redis)
	gate := func(roles []domain.Role) []gin.HandlerFunc {
		return []gin.HandlerFunc{middleware.RequireRoles(d.Verifier, roles...), limit}
	}

	r.GET("/health", hd.Health)
	r.GET("/health/db", hd.DBCheck)

	dashboard := r.Group("/dashboard", gate(frontDesk)...)
	dashboard.GET("/stats", hd.DashboardStats)

	payments := r.Group("/payments", gate(frontDesk)...)
	payments.POST("/invoices", hd.CreateInvoice)
	payments.GET("/invoices", hd.ListInvoices)
	payments.POST("/", hd.AddPayment)

	reports := r.Group("/reports", gate(managers)...)
	for _, kind := range []string{services.ReportRevenue, services.ReportRoomOccupancy, services.ReportGuestBilling, services.ReportServiceUsage} {
		reports.GET("/"+kind, hd.Report(kind))
	}

	reservations := r.Group("/reservations", gate(frontDesk)...)
	reservations.GET("/", hd.ListReservations)
	reservations.POST("/", hd.CreateReservation)
	reservations.POST("/:id/checkin", hd.CheckIn)
	reservations.POST("/:id/checkout", hd.CheckOut)

	guests := r.Group("/guests", gate(frontDesk)...)
	guests.POST("/", hd.CreateGuest)
	guests.GET("/search", hd.SearchGuests)
	guests.GET("/:id", hd.GetGuest)

	rooms := r.Group("/rooms", gate(frontDesk)...)
	rooms.GET("/available", hd.AvailableRooms)

	return r
}
