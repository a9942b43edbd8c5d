package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"runesse/internal/handler/api"
	"runesse/internal/handler/middleware"
	"runesse/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Request *api.RequestHandler
	Admin   *api.AdminHandler
	Card    *api.CardHandler
}

type Middlewares struct {
	Logger      *middleware.Logger
	Session     *middleware.SessionMiddleware
	AdminDevice *middleware.AdminDeviceMiddleware
	RateLimit   *middleware.RateLimiter
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	requestHandler *api.RequestHandler,
	adminHandler *api.AdminHandler,
	cardHandler *api.CardHandler,
	sessionMiddleware *middleware.SessionMiddleware,
	adminDeviceMiddleware *middleware.AdminDeviceMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	h := Handlers{Request: requestHandler, Admin: adminHandler, Card: cardHandler}
	mw := Middlewares{Logger: logger, Session: sessionMiddleware, AdminDevice: adminDeviceMiddleware, RateLimit: rateLimiter}
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(mw.Session.OptionalSession())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{mw.RateLimit.Middleware()}

	apiGroup := engine.Group("/api")
	{
		requests := apiGroup.Group("/requests")
		addRoutes(requests, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Request.Create, Mw: limited},
			{Method: http.MethodGet, Path: "", Handler: h.Request.ListPublic},
			{Method: http.MethodGet, Path: "/mine", Handler: h.Request.ListMine},
			{Method: http.MethodPost, Path: "/take", Handler: h.Request.Take},
			{Method: http.MethodPost, Path: "/status", Handler: h.Request.SetStatus},
		})

		addRoutes(apiGroup.Group("/cards"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Card.ListActive},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/device", Handler: h.Admin.CheckDevice, Mw: limited},
			})

			trusted := admin.Group("")
			trusted.Use(mw.RateLimit.Middleware(), mw.AdminDevice.RequireTrustedDevice())
			addRoutes(trusted, []route{
				{Method: http.MethodGet, Path: "/requests", Handler: h.Admin.ListRequests},
				{Method: http.MethodPost, Path: "/requests/match", Handler: h.Admin.Match},
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
		handlers := append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
