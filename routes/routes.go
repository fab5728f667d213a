package routes

import (
	"github.com/dineshnaiduavula/moviesample/configs"
	"github.com/dineshnaiduavula/moviesample/controllers"
	"github.com/dineshnaiduavula/moviesample/middlewares"
	"github.com/dineshnaiduavula/moviesample/pkg/razorpay"
	"github.com/dineshnaiduavula/moviesample/repository"
	"github.com/dineshnaiduavula/moviesample/services"
	"github.com/dineshnaiduavula/moviesample/ws"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, feed *ws.Feed) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	staffRepo := repository.NewStaffRepository(db)

	// Services
	policy := services.FeePolicy{
		HandlingRate: cfg.HandlingRate,
		SGSTRate:     cfg.SGSTRate,
		CGSTRate:     cfg.CGSTRate,
	}
	gateway := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo, policy)
	paySvc := services.NewPaymentService(db, ledgerRepo, cartRepo, menuRepo, gateway, policy, cfg.RazorpayKeyID, feed)
	orderSvc := services.NewOrderService(db, ledgerRepo, feed)
	authSvc := services.NewAuthService(staffRepo)

	// Controllers
	sessionCtrl := controllers.NewSessionController(cfg.JWTSecret, cfg.JWTTTL)
	authCtrl := controllers.NewAuthController(authSvc, cfg.JWTSecret, cfg.JWTTTL)
	menuCtrl := controllers.NewMenuController(menuRepo, feed)
	cartCtrl := controllers.NewCartController(cartSvc)
	payCtrl := controllers.NewPaymentController(paySvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	// Public
	r.POST("/session", sessionCtrl.Start)
	r.GET("/menu", menuCtrl.List)
	r.POST("/staff/login", authCtrl.Login)
	r.GET("/ws/menu", feed.Handle("menu"))

	// Patron (customer session)
	patron := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "customer"))
	{
		patron.GET("/cart", cartCtrl.Get)
		patron.POST("/cart/lines", cartCtrl.Add)
		patron.PATCH("/cart/lines", cartCtrl.UpdateQty)
		patron.DELETE("/cart/lines", cartCtrl.Remove)
		patron.DELETE("/cart", cartCtrl.Clear)

		patron.POST("/payments/intent", payCtrl.CreateIntent)
		patron.POST("/payments/callback", payCtrl.Confirm)
		patron.POST("/payments/cancel", payCtrl.Cancel)
	}

	// Staff
	staff := r.Group("/staff", middlewares.AuthMiddleware(cfg.JWTSecret, "staff"))
	{
		staff.GET("/me", authCtrl.Me)

		staff.GET("/menu", menuCtrl.List)
		staff.POST("/menu", menuCtrl.Create)
		staff.PATCH("/menu/:id", menuCtrl.Update)
		staff.PATCH("/menu/:id/enabled", menuCtrl.SetEnabled)

		staff.GET("/orders/pending", orderCtrl.Pending)
		staff.GET("/orders/closed", orderCtrl.Closed)
		staff.GET("/orders/export", orderCtrl.Export)
		staff.PATCH("/orders/:id/complete", orderCtrl.Complete)
		staff.PATCH("/orders/:id/not-done", orderCtrl.NotDone)
		staff.GET("/transactions", orderCtrl.Transactions)

		staff.GET("/ws/orders", feed.Handle("orders"))
	}
}
