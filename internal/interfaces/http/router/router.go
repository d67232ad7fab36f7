package router

import (
	"github.com/fermerce/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every endpoint group the API serves
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Address     *handler.AddressHandler
	Country     *handler.CountryHandler
	State       *handler.StateHandler
	SellingUnit *handler.SellingUnitHandler
	Status      *handler.StatusHandler
	Tracking    *handler.TrackingHandler
	Payment     *handler.PaymentHandler
	Card        *handler.CardHandler
	Recipient   *handler.RecipientHandler
	Transfer    *handler.TransferHandler
}

// PublicPaths lists the endpoints served without a bearer token. The JWT
// middleware skips these; everything else under the API group requires
// authentication.
func PublicPaths(version string) []string {
	prefix := "/api/" + version
	return []string{
		prefix + "/auth/register",
		prefix + "/auth/login",
		prefix + "/auth/refresh",
		prefix + "/users/exists",
	}
}

// Setup registers all API routes under /api/<version>. Reference-data
// reads go on the base group and need no token; everything else sits
// behind the auth middleware, whose skip list carries the public auth
// endpoints.
func Setup(engine *gin.Engine, version string, authMiddleware gin.HandlerFunc, h Handlers) {
	base := engine.Group("/api/" + version)

	base.GET("/countries", h.Country.List)
	base.GET("/countries/total/count", h.Country.TotalCount)
	base.GET("/countries/:id", h.Country.GetByID)
	base.GET("/states", h.State.List)
	base.GET("/states/total/count", h.State.TotalCount)
	base.GET("/states/:id", h.State.GetByID)
	base.GET("/statuses", h.Status.List)
	base.GET("/statuses/:id", h.Status.GetByID)

	api := base.Group("")
	api.Use(authMiddleware)

	auth := api.Group("/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)

	users := api.Group("/users")
	users.GET("/me", h.User.Me)
	users.PUT("/me", h.User.UpdateMe)
	users.PUT("/me/password", h.User.ChangePassword)
	users.POST("/me/addresses", h.Address.Create)
	users.GET("/me/addresses", h.Address.List)
	users.GET("/me/addresses/total/count", h.Address.TotalCount)
	users.GET("/me/addresses/:id", h.Address.GetByID)
	users.PUT("/me/addresses/:id", h.Address.Update)
	users.DELETE("/me/addresses/:id", h.Address.Delete)
	users.GET("/exists", h.User.CheckEmail)
	users.GET("", h.User.List)
	users.GET("/:id", h.User.GetByID)
	users.POST("/:id/verify", h.User.Verify)
	users.DELETE("/:id", h.User.Delete)

	countries := api.Group("/countries")
	countries.POST("", h.Country.Create)
	countries.PUT("/:id", h.Country.Update)
	countries.DELETE("/:id", h.Country.Delete)

	states := api.Group("/states")
	states.POST("", h.State.Create)
	states.PUT("/:id", h.State.Update)
	states.DELETE("/:id", h.State.Delete)

	products := api.Group("/products/:productId/selling-units")
	products.POST("", h.SellingUnit.Create)
	products.GET("", h.SellingUnit.List)
	products.GET("/total/count", h.SellingUnit.TotalCount)
	products.GET("/:unitId", h.SellingUnit.Get)
	products.PUT("/:unitId", h.SellingUnit.Update)
	products.DELETE("/:unitId", h.SellingUnit.Delete)

	statuses := api.Group("/statuses")
	statuses.POST("", h.Status.Create)
	statuses.PUT("/:id", h.Status.Update)
	statuses.DELETE("/:id", h.Status.Delete)

	tracking := api.Group("/order-items/:itemId/tracking")
	tracking.POST("", h.Tracking.Create)
	tracking.GET("", h.Tracking.List)

	payments := api.Group("/payments")
	payments.POST("/charge", h.Payment.CreateCharge)
	payments.POST("/charge/authorized", h.Payment.CreateAuthorizedCharge)
	payments.GET("/verify/:reference", h.Payment.Verify)
	payments.GET("", h.Payment.List)
	payments.GET("/total/count", h.Payment.TotalCount)
	payments.GET("/all", h.Payment.ListAll)
	payments.GET("/:id", h.Payment.GetByID)
	payments.POST("/:id/refund", h.Payment.Refund)

	cards := api.Group("/cards")
	cards.GET("", h.Card.List)
	cards.GET("/:id", h.Card.GetByID)
	cards.DELETE("/:id", h.Card.Delete)

	recipients := api.Group("/recipients")
	recipients.POST("", h.Recipient.Create)
	recipients.GET("", h.Recipient.List)
	recipients.GET("/:id", h.Recipient.GetByID)
	recipients.DELETE("/:id", h.Recipient.Delete)

	transfers := api.Group("/transfers")
	transfers.POST("", h.Transfer.Create)
	transfers.GET("", h.Transfer.List)
	transfers.GET("/:id", h.Transfer.GetByID)
	transfers.POST("/:id/complete", h.Transfer.Complete)
}
