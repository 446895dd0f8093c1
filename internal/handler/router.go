package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"petportrait-checkout/internal/handler/api"
	"petportrait-checkout/internal/handler/middleware"
	"petportrait-checkout/internal/pkg/config"
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
	checkoutHandler *api.CheckoutHandler,
	webhookHandler *api.WebhookHandler,
	creditsHandler *api.CreditsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, checkoutHandler, webhookHandler, creditsHandler, authMiddleware)
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
	cfg config.Config,
	checkoutHandler *api.CheckoutHandler,
	webhookHandler *api.WebhookHandler,
	creditsHandler *api.CreditsHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	// The processor signs webhook deliveries itself; no CSRF or session here.
	engine.POST("/checkout/webhook", webhookHandler.HandleEvent)

	checkout := engine.Group("/checkout")
	checkout.Use(middleware.CSRF(cfg.Session))
	{
		guest := checkout.Group("")
		guest.Use(authMiddleware.OptionalAuth())
		addRoutes(guest, []route{
			{Method: http.MethodPost, Path: "/create-order", Handler: checkoutHandler.CreateOrder},
			{Method: http.MethodPost, Path: "/process-payment", Handler: checkoutHandler.ProcessPayment},
			{Method: http.MethodPost, Path: "/validate-coupon", Handler: checkoutHandler.ValidateCoupon},
			{Method: http.MethodGet, Path: "/payment-status/:orderId", Handler: checkoutHandler.PaymentStatus},
		})

		authed := checkout.Group("")
		authed.Use(authMiddleware.RequireAuth())
		addRoutes(authed, []route{
			{Method: http.MethodGet, Path: "/orders", Handler: checkoutHandler.GetOrders},
			{Method: http.MethodGet, Path: "/orders/:id", Handler: checkoutHandler.GetOrder},
			{Method: http.MethodPost, Path: "/link-order", Handler: checkoutHandler.LinkOrder},
		})
	}

	credits := engine.Group("/credits")
	credits.Use(middleware.CSRF(cfg.Session))
	credits.Use(authMiddleware.RequireAuth())
	{
		addRoutes(credits, []route{
			{Method: http.MethodGet, Path: "", Handler: creditsHandler.GetBalance},
			{Method: http.MethodGet, Path: "/transactions", Handler: creditsHandler.GetTransactions},
			{Method: http.MethodPost, Path: "/debit", Handler: creditsHandler.Debit},
		})
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
