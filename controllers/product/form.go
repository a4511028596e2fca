package productcontroller

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopstack/ecommerce-api/models"
	"gorm.io/gorm"
)

type productForm struct {
	Barcode     string
	Description string
	Price       float64
	Quantity    int
	Category    string
}

// bindProductForm parses and validates the multipart product fields. The
// returned field-error map is nil when the form is valid. excludeID carves the
// product being updated out of the barcode uniqueness check.
func bindProductForm(db *gorm.DB, c *gin.Context, excludeID uint) (*productForm, map[string][]string) {
	fields := map[string][]string{}
	add := func(field, msg string) { fields[field] = append(fields[field], msg) }

	form := &productForm{
		Barcode:     strings.TrimSpace(c.PostForm("barcode")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Category:    strings.TrimSpace(c.PostForm("category")),
	}

	if form.Barcode == "" {
		add("barcode", "The barcode field is required.")
	} else {
		query := db.Model(&models.Product{}).Where("barcode = ?", form.Barcode)
		if excludeID != 0 {
			query = query.Where("id <> ?", excludeID)
		}
		var count int64
		if err := query.Count(&count).Error; err == nil && count > 0 {
			add("barcode", "The barcode has already been taken.")
		}
	}

	if form.Description == "" {
		add("description", "The description field is required.")
	}
	if form.Category == "" {
		add("category", "The category field is required.")
	}

	priceStr := c.PostForm("price")
	if priceStr == "" {
		add("price", "The price field is required.")
	} else if price, err := strconv.ParseFloat(priceStr, 64); err != nil {
		add("price", "The price must be a number.")
	} else if price < 0 {
		add("price", "The price must be at least 0.")
	} else {
		form.Price = price
	}

	quantityStr := c.PostForm("quantity")
	if quantityStr == "" {
		add("quantity", "The quantity field is required.")
	} else if quantity, err := strconv.Atoi(quantityStr); err != nil {
		add("quantity", "The quantity must be an integer.")
	} else if quantity < 0 {
		add("quantity", "The quantity must be at least 0.")
	} else {
		form.Quantity = quantity
	}

	if len(fields) > 0 {
		return nil, fields
	}
	return form, nil
}
