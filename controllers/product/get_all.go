package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopstack/ecommerce-api/models"
	"gorm.io/gorm"
)

// GetProducts lists the whole catalog. Public; reads committed state only.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to fetch products",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
