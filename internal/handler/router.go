package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"agenda-espacos/internal/handler/api"
	"agenda-espacos/internal/handler/middleware"
	"agenda-espacos/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, reservationHandler *api.ReservationHandler, spaceHandler *api.SpaceHandler, identity *middleware.IdentityMiddleware) {
	setupMiddleware(engine, cfg, identity)
	setupRoutes(engine, reservationHandler, spaceHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, identity *middleware.IdentityMiddleware) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(identity.CaptureIdentity())
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, reservationHandler *api.ReservationHandler, spaceHandler *api.SpaceHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "", Handler: reservationHandler.ListReservations},
				{Method: http.MethodGet, Path: "/stream", Handler: reservationHandler.StreamReservations},
				{Method: http.MethodPost, Path: "/validate", Handler: reservationHandler.ValidateSelection},
			})
		}

		spaces := apiGroup.Group("/spaces")
		{
			addRoutes(spaces, []route{
				{Method: http.MethodGet, Path: "", Handler: spaceHandler.ListSpaces},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: spaceHandler.Availability},
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
