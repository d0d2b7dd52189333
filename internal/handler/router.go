package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wedding/guesthub/internal/config"
	"wedding/guesthub/internal/handler/middleware"
	"wedding/guesthub/internal/service"
	jwtpkg "wedding/guesthub/pkg/jwt"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	jwtManager *jwtpkg.Manager,
	sessionService service.SessionService,
	authHandler *AuthHandler,
	rsvpHandler *RSVPHandler,
	inviteeHandler *InviteeHandler,
	guestListHandler *GuestListHandler,
	weddingHandler *WeddingHandler,
	debugHandler *DebugHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public guest-facing routes: the invitation token in the RSVP link is
	// the only credential a guest ever holds.
	public := r.Group("/api/v1")
	{
		public.GET("/wedding", weddingHandler.Info)
		public.GET("/verify-token", middleware.NoCache(), rsvpHandler.VerifyToken)
		public.POST("/rsvp", rsvpHandler.Submit)
		public.POST("/auth/login", authHandler.Login)

		// Diagnostics; the handler enforces the secret in release mode.
		public.GET("/debug", middleware.NoCache(), debugHandler.Report)
	}

	// Host dashboard routes
	host := r.Group("/api/v1")
	host.Use(middleware.HostAuth(jwtManager, sessionService))
	{
		host.POST("/auth/logout", authHandler.Logout)
		host.POST("/invitees", inviteeHandler.Create)
		host.DELETE("/invitees", inviteeHandler.Delete)
		host.GET("/guests", middleware.NoCache(), guestListHandler.List)
	}

	return r
}
