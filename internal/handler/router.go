package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"loca-api/internal/handler/api"
	"loca-api/internal/handler/middleware"
	"loca-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Reservation  *api.ReservationHandler
	Availability *api.AvailabilityHandler
	Transaction  *api.TransactionHandler
	Dashboard    *api.DashboardHandler
	Listing      *api.ListingHandler
	Conversation *api.ConversationHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Public read endpoints feed the booking calendar UI.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability/:listingId", Handler: h.Availability.BlockedDates},
			{Method: http.MethodGet, Path: "/bookings/:listingId", Handler: h.Availability.BookedDates},
			{Method: http.MethodGet, Path: "/listings/:id", Handler: h.Listing.Get},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authed, []route{
				{Method: http.MethodPost, Path: "/availability/update", Handler: h.Availability.Update},

				{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.ListMine},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPatch, Path: "/reservations/:id", Handler: h.Reservation.HostConfirm},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Reservation.Delete},
				{Method: http.MethodPatch, Path: "/reservations/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPatch, Path: "/reservations/:id/archive", Handler: h.Reservation.Archive},
				{Method: http.MethodPatch, Path: "/reservations/:id/confirm-payment", Handler: h.Reservation.ConfirmPayment},
				{Method: http.MethodPatch, Path: "/reservations/:id/validate-arrival", Handler: h.Reservation.ValidateArrival},

				{Method: http.MethodPatch, Path: "/transactions/:id", Handler: h.Transaction.Update, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},

				{Method: http.MethodGet, Path: "/dashboard/revenue", Handler: h.Dashboard.Revenue},

				{Method: http.MethodPost, Path: "/listings", Handler: h.Listing.Create},
				{Method: http.MethodPatch, Path: "/listings/:id", Handler: h.Listing.Update},
				{Method: http.MethodDelete, Path: "/listings/:id", Handler: h.Listing.Delete},

				{Method: http.MethodPost, Path: "/conversations", Handler: h.Conversation.Start},
				{Method: http.MethodGet, Path: "/conversations", Handler: h.Conversation.List},
				{Method: http.MethodGet, Path: "/conversations/:id/messages", Handler: h.Conversation.Messages},
				{Method: http.MethodPost, Path: "/conversations/:id/messages", Handler: h.Conversation.Send},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
