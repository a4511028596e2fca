package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopstack/ecommerce-api/models"
	"gorm.io/gorm"
)

func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to fetch product",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
