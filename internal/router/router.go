package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/thinknumbers/order-scanner-delight/internal/cart"
	"github.com/thinknumbers/order-scanner-delight/internal/catalog"
	"github.com/thinknumbers/order-scanner-delight/internal/checkout"
	"github.com/thinknumbers/order-scanner-delight/internal/selection"
	"github.com/thinknumbers/order-scanner-delight/internal/store"
	"github.com/thinknumbers/order-scanner-delight/internal/table"
)

type Deps struct {
	AllowOrigins []string

	Catalog      *catalog.Handler
	CatalogAdmin *catalog.AdminHandler
	Selection    *selection.Handler
	Cart         *cart.Handler
	Checkout     *checkout.Handler
	Store        *store.Handler
	Table        *table.Handler
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── STOREFRONT ─────────────────────────
	r.GET("/store", deps.Store.GetStore)
	r.GET("/categories", deps.Catalog.ListCategories)
	r.GET("/products", deps.Catalog.ListProducts)
	r.GET("/products/popular", deps.Catalog.ListPopular)
	r.GET("/products/:id", deps.Catalog.GetProduct)
	r.POST("/products/:id/validate", deps.Selection.Validate)

	// ───────────────────────── CART ─────────────────────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", deps.Cart.GetCart)
		cartGroup.DELETE("", deps.Cart.ClearCart)
		cartGroup.POST("/items", deps.Cart.AddItem)
		cartGroup.PATCH("/items/:index", deps.Cart.UpdateQuantity)
		cartGroup.DELETE("/items/:index", deps.Cart.RemoveItem)
	}

	// ───────────────────────── CHECKOUT ─────────────────────────
	r.GET("/checkout/totals", deps.Checkout.GetTotals)
	r.POST("/checkout", deps.Checkout.PlaceOrder)

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	{
		admin.PUT("/store", deps.Store.UpdateStore)
		admin.POST("/store/logo", deps.Store.UploadLogo)

		admin.POST("/categories", deps.CatalogAdmin.CreateCategory)
		admin.PUT("/categories/:id", deps.CatalogAdmin.UpdateCategory)
		admin.DELETE("/categories/:id", deps.CatalogAdmin.DeleteCategory)

		admin.POST("/products", deps.CatalogAdmin.CreateProduct)
		admin.PUT("/products/:id", deps.CatalogAdmin.UpdateProduct)
		admin.DELETE("/products/:id", deps.CatalogAdmin.DeleteProduct)
		admin.POST("/products/:id/image", deps.CatalogAdmin.UploadProductImage)

		admin.GET("/tables", deps.Table.ListTables)
		admin.POST("/tables", deps.Table.CreateTable)
		admin.DELETE("/tables/:id", deps.Table.DeleteTable)
		admin.POST("/tables/:id/qr", deps.Table.GenerateQR)

		admin.GET("/orders", deps.Checkout.ListOrders)
	}

	return r
}
