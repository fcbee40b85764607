package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SignUp(c *ginext.Context)
	Login(c *ginext.Context)
	AddProduct(c *ginext.Context)
	UpdateProduct(c *ginext.Context)
	DeleteProduct(c *ginext.Context)
	GetProducts(c *ginext.Context)
	GetAllProducts(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	AcceptBooking(c *ginext.Context)
	RejectBooking(c *ginext.Context)
	GetBookings(c *ginext.Context)
	CreateOrder(c *ginext.Context)
	VerifyPayment(c *ginext.Context)
	GetNotifications(c *ginext.Context)
	MarkNotificationRead(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/signup", h.SignUp)
		api.POST("/login", h.Login)

		// Products
		api.GET("/products", h.GetAllProducts)
		api.POST("/products/:id", h.AddProduct)
		api.GET("/products/:id", h.GetProducts)
		api.PUT("/products/:userId/:productId", h.UpdateProduct)
		api.DELETE("/products/:userId/:productId", h.DeleteProduct)

		// Bookings
		api.POST("/bookings/:id", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBookings)
		api.POST("/bookings/:id/:bookingId/accept", h.AcceptBooking)
		api.POST("/bookings/:id/:bookingId/reject", h.RejectBooking)

		// Payments
		api.POST("/payments/create-order", h.CreateOrder)
		api.POST("/payments/verify", h.VerifyPayment)

		// Notifications
		api.GET("/:userId/notifications", h.GetNotifications)
		api.PUT("/:userId/notifications/:notificationId/read", h.MarkNotificationRead)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
