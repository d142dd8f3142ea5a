package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"voting-platform/internal/handler/api"
	"voting-platform/internal/handler/middleware"
	"voting-platform/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	candidateHandler *api.CandidateHandler,
	voteHandler *api.VoteHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, candidateHandler, voteHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	candidateHandler *api.CandidateHandler,
	voteHandler *api.VoteHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		candidates := apiGroup.Group("/candidates")
		{
			addRoutes(candidates, []route{
				{Method: http.MethodGet, Path: "", Handler: candidateHandler.List},
			})

			adminOnly := candidates.Group("")
			adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: candidateHandler.Create},
				{Method: http.MethodDelete, Path: "/:candidate_id", Handler: candidateHandler.Delete},
			})
		}

		votes := apiGroup.Group("/votes")
		{
			// Statistics is the one vote endpoint without auth: aggregate
			// numbers are public while per-candidate standings are not.
			addRoutes(votes, []route{
				{Method: http.MethodGet, Path: "/statistics", Handler: voteHandler.Statistics},
			})

			authRequired := votes.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/:candidate_id", Handler: voteHandler.Cast},
				{Method: http.MethodGet, Path: "/has_voted", Handler: voteHandler.HasVoted},
				{Method: http.MethodGet, Path: "/voters", Handler: voteHandler.Voters},
			})

			adminOnly := votes.Group("")
			adminOnly.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodGet, Path: "/results", Handler: voteHandler.Results},
				{Method: http.MethodPost, Path: "/reset", Handler: voteHandler.Reset},
			})
		}
	}
}

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
