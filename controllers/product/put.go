package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopstack/ecommerce-api/models"
	"gorm.io/gorm"
)

// UpdateProduct updates an existing product by ID. Accepts the same fields as
// CreateProduct and an optional "image" file; a replacement image deletes the
// previous blob.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to update product",
				"error":   err.Error(),
			})
			return
		}

		form, fieldErrors := bindProductForm(db, c, product.ID)
		if fieldErrors != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": "Validation failed",
				"errors":  fieldErrors,
			})
			return
		}

		product.Barcode = form.Barcode
		product.Description = form.Description
		product.Price = form.Price
		product.Quantity = form.Quantity
		product.Category = form.Category

		if file, err := c.FormFile("image"); err == nil {
			url, saveErr := saveProductImage(c, file)
			if saveErr != nil {
				c.JSON(http.StatusInternalServerError, gin.H{
					"message": "Failed to update product",
					"error":   saveErr.Error(),
				})
				return
			}
			if product.ImageURL != "" {
				removeProductImage(product.ImageURL)
			}
			product.ImageURL = url
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to update product",
				"error":   err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Product updated successfully",
			"product": product,
		})
	}
}
