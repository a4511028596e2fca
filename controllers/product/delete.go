package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopstack/ecommerce-api/models"
	"gorm.io/gorm"
)

// DeleteProduct removes a product. The injected policy gates the action;
// rejection is a 403 without touching the catalog.
func DeleteProduct(db *gorm.DB, allow Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := currentUser(c, db)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !allow(user) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized action"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to delete product",
				"error":   err.Error(),
			})
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to delete product",
				"error":   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}
