package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"sneakdrop/internal/domain/user"
	"sneakdrop/internal/handler/api"
	"sneakdrop/internal/handler/middleware"
	"sneakdrop/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth       *api.AuthHandler
	Vote       *api.VoteHandler
	Product    *api.ProductHandler
	Submission *api.SubmissionHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	rateLimit := middleware.NewRateLimiter(cfg.RateLimit).Middleware()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: handlers.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		// GET is public with best-effort identity; mutations require auth
		// and are rate limited per client IP.
		votes := apiGroup.Group("/votes")
		{
			addRoutes(votes, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Vote.GetVoteStatus,
					Mw: []gin.HandlerFunc{authMiddleware.OptionalAuth()}},
				{Method: http.MethodPost, Path: "", Handler: handlers.Vote.CastVote,
					Mw: []gin.HandlerFunc{rateLimit, authMiddleware.RequireAuth()}},
				{Method: http.MethodDelete, Path: "", Handler: handlers.Vote.RemoveVote,
					Mw: []gin.HandlerFunc{rateLimit, authMiddleware.RequireAuth()}},
			})
		}

		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Product.ListProducts},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Product.GetProduct},
			})
		}

		submissions := apiGroup.Group("/submissions")
		submissions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(submissions, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Submission.CreateSubmission},
				{Method: http.MethodGet, Path: "", Handler: handlers.Submission.ListOwnSubmissions},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/products", Handler: handlers.Product.CreateProduct},
				{Method: http.MethodPut, Path: "/products/:id", Handler: handlers.Product.UpdateProduct},
				{Method: http.MethodGet, Path: "/submissions", Handler: handlers.Submission.ListAllSubmissions},
				{Method: http.MethodPatch, Path: "/submissions/:id", Handler: handlers.Submission.UpdateSubmissionStatus},
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
