package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopstack/ecommerce-api/models"
	"gorm.io/gorm"
)

// CreateProduct creates a new catalog entry with an optional image upload.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, fieldErrors := bindProductForm(db, c, 0)
		if fieldErrors != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": "Validation failed",
				"errors":  fieldErrors,
			})
			return
		}

		var imageURL string
		if file, err := c.FormFile("image"); err == nil {
			url, saveErr := saveProductImage(c, file)
			if saveErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{
					"message": "Failed to create product",
					"error":   saveErr.Error(),
				})
				return
			}
			imageURL = url
		}

		product := models.Product{
			Barcode:     form.Barcode,
			Description: form.Description,
			Price:       form.Price,
			Quantity:    form.Quantity,
			Category:    form.Category,
			ImageURL:    imageURL,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to create product",
				"error":   err.Error(),
			})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Product created successfully",
			"product": product,
		})
	}
}
