package orderControllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopstack/ecommerce-api/middleware"
	"github.com/shopstack/ecommerce-api/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ID       uint `json:"id"`
	Quantity int  `json:"quantity"`
}

type ShippingDetailsInput struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}

type PlaceOrderRequest struct {
	Items           []OrderItemInput     `json:"items"`
	ShippingDetails ShippingDetailsInput `json:"shippingDetails"`
	PaymentMethod   string               `json:"paymentMethod"`
	TotalAmount     *float64             `json:"totalAmount"`
}

// -------- Errors --------

// ValidationError carries per-field messages for a 422 response. No storage
// mutation has happened when one is returned.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string { return "validation failed" }

// InsufficientStockError aborts the placement transaction, naming the product
// that could not cover the requested quantity.
type InsufficientStockError struct {
	Product string
}

func (e *InsufficientStockError) Error() string {
	return "Insufficient stock for product: " + e.Product
}

// -------- Validation --------

func validatePlaceOrder(db *gorm.DB, req *PlaceOrderRequest) *ValidationError {
	fields := map[string][]string{}
	add := func(field, msg string) { fields[field] = append(fields[field], msg) }

	if len(req.Items) == 0 {
		add("items", "The items field is required.")
	}
	for i, item := range req.Items {
		if item.ID == 0 {
			add(fmt.Sprintf("items.%d.id", i), fmt.Sprintf("The items.%d.id field is required.", i))
		} else {
			var count int64
			if err := db.Model(&models.Product{}).Where("id = ?", item.ID).Count(&count).Error; err == nil && count == 0 {
				add(fmt.Sprintf("items.%d.id", i), fmt.Sprintf("The selected items.%d.id is invalid.", i))
			}
		}
		if item.Quantity < 1 {
			add(fmt.Sprintf("items.%d.quantity", i), fmt.Sprintf("The items.%d.quantity must be at least 1.", i))
		}
	}

	shipping := []struct {
		field string
		value string
	}{
		{"fullName", req.ShippingDetails.FullName},
		{"address", req.ShippingDetails.Address},
		{"city", req.ShippingDetails.City},
		{"postalCode", req.ShippingDetails.PostalCode},
		{"phone", req.ShippingDetails.Phone},
	}
	for _, s := range shipping {
		if strings.TrimSpace(s.value) == "" {
			add("shippingDetails."+s.field, "The shippingDetails."+s.field+" field is required.")
		}
	}

	if req.PaymentMethod == "" {
		add("paymentMethod", "The paymentMethod field is required.")
	} else if req.PaymentMethod != string(models.PaymentMethodCOD) {
		add("paymentMethod", "The selected paymentMethod is invalid.")
	}

	if req.TotalAmount == nil {
		add("totalAmount", "The totalAmount field is required.")
	} else if *req.TotalAmount < 0 {
		add("totalAmount", "The totalAmount must be at least 0.")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// -------- Core Logic --------

// Generate unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder validates the cart and commits the order together with its stock
// decrements in a single transaction. Items are processed in submitted order;
// the first failure rolls the whole unit of work back, so an order row never
// persists without its matching decrements and stock never goes negative.
//
// The total amount is stored as submitted by the client and is not recomputed
// from current prices.
func PlaceOrder(db *gorm.DB, userID uint, req *PlaceOrderRequest) (*models.Order, error) {
	if verr := validatePlaceOrder(db, req); verr != nil {
		return nil, verr
	}

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return nil, err
	}
	shippingJSON, err := json.Marshal(req.ShippingDetails)
	if err != nil {
		return nil, err
	}

	order := models.Order{
		UserID:          userID,
		OrderRef:        generateOrderRef(),
		Items:           datatypes.JSON(itemsJSON),
		ShippingDetails: datatypes.JSON(shippingJSON),
		PaymentMethod:   models.PaymentMethod(req.PaymentMethod),
		TotalAmount:     *req.TotalAmount,
		Status:          models.OrderStatusPending,
		CreatedAt:       time.Now(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range req.Items {
			var product models.Product
			if err := tx.First(&product, "id = ?", item.ID).Error; err != nil {
				// The validator saw this product; absence now means it
				// vanished mid-flight. Fatal, roll back.
				return err
			}

			// Conditional decrement: the WHERE clause is the stock check, so
			// two concurrent placements can never both drive the row negative.
			// Selling down to exactly zero is allowed.
			res := tx.Model(&models.Product{}).
				Where("id = ? AND quantity >= ?", item.ID, item.Quantity).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return &InsufficientStockError{Product: product.Description}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	broadcastNewOrder(order)
	return &order, nil
}

// -------- Handlers --------

// PlaceOrderHandler handles POST /orders for the authenticated user.
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"message": "Validation failed",
				"errors":  gin.H{"payload": []string{"The request body is malformed."}},
			})
			return
		}

		order, err := PlaceOrder(db, userID, &req)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"message": "Validation failed",
					"errors":  verr.Fields,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Failed to place order",
				"error":   err.Error(),
			})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}

// GetUserOrdersHandler returns the authenticated user's orders, newest first.
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
