package models

import (
	"time"

	"gorm.io/datatypes"
)

type OrderStatus string
type PaymentMethod string

const (
	// Orders start pending and stay there; later transitions belong to a
	// fulfilment flow this service does not model.
	OrderStatusPending OrderStatus = "pending"

	// Cash on delivery is the only accepted payment method.
	PaymentMethodCOD PaymentMethod = "cod"
)

type Order struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserID          uint           `gorm:"not null;index" json:"user_id"`
	OrderRef        string         `gorm:"uniqueIndex" json:"order_ref"`
	Items           datatypes.JSON `gorm:"not null" json:"items"`
	ShippingDetails datatypes.JSON `gorm:"not null" json:"shipping_details"`
	PaymentMethod   PaymentMethod  `gorm:"type:VARCHAR(20)" json:"payment_method"`
	TotalAmount     float64        `json:"total_amount"`
	Status          OrderStatus    `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
}

// OrderItem is the creation-time snapshot of one cart line, stored inside
// Order.Items. Later product changes do not alter historical orders.
type OrderItem struct {
	ProductID uint `json:"id"`
	Quantity  int  `json:"quantity"`
}

// ShippingDetails is the snapshot stored inside Order.ShippingDetails.
type ShippingDetails struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Phone      string `json:"phone"`
}
