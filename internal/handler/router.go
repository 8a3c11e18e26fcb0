package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/api"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers so the router signature stays stable as handlers are added.
type Handlers struct {
	Booking      *api.BookingHandler
	Room         *api.RoomHandler
	Availability *api.AvailabilityHandler
	CustomTour   *api.CustomTourHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
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

	adminOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

	apiGroup := engine.Group("/api")
	{
		availability := apiGroup.Group("/availability")
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "/tours/:tourId", Handler: h.Availability.TourAvailability},
				{Method: http.MethodGet, Path: "/hotels/:hotelId", Handler: h.Availability.HotelAvailability},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "/tours/:tourId", Handler: h.Booking.CreateTourBooking},
				{Method: http.MethodPost, Path: "/hotels/:hotelId", Handler: h.Booking.CreateHotelBooking},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMyBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.GetBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Booking.CancelBooking},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.UpdateBookingStatus, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id/room", Handler: h.Room.AssignRoom, Mw: adminOnly},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodPut, Path: "/:id/maintenance", Handler: h.Room.SetMaintenance, Mw: adminOnly},
			})
		}

		customTours := apiGroup.Group("/custom-tours")
		customTours.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customTours, []route{
				{Method: http.MethodPost, Path: "", Handler: h.CustomTour.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.CustomTour.Get},
				{Method: http.MethodPut, Path: "/:id/guide", Handler: h.CustomTour.AssignGuide, Mw: adminOnly},
				{Method: http.MethodPost, Path: "/:id/quotes", Handler: h.CustomTour.SubmitQuote},
				{Method: http.MethodPut, Path: "/:id/quotes", Handler: h.CustomTour.UpdateQuote},
				{Method: http.MethodPost, Path: "/:id/bargains", Handler: h.CustomTour.SubmitBargain},
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.CustomTour.AcceptQuote},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: h.CustomTour.Reject},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.CustomTour.Cancel},
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
