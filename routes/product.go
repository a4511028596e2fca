package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/shopstack/ecommerce-api/controllers/product"
	"github.com/shopstack/ecommerce-api/middleware"
	"gorm.io/gorm"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	// Browsing the catalog is public.
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/products/:id", productcontroller.GetProductByID(db))

	// Mutations require a valid session token; destructive actions are
	// additionally gated by the admin policy.
	protected := r.Group("/products")
	protected.Use(middleware.ValidateToken)
	{
		protected.POST("", productcontroller.CreateProduct(db))
		protected.PUT("/:id", productcontroller.UpdateProduct(db))
		protected.DELETE("/:id", productcontroller.DeleteProduct(db, productcontroller.RoleIsAdmin))
		protected.GET("/export-excel", productcontroller.ExportProductsToExcel(db, productcontroller.RoleIsAdmin))
	}
}
