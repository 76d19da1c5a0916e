package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment types accepted by the terminal.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

// Order is one sale recorded during an active shift. Orders are append-only
// in this subsystem: never mutated after creation.
type Order struct {
	ID          string          `json:"id" validate:"required"`
	EmployeeID  string          `json:"employeeId" validate:"required"`
	LocationID  string          `json:"locationId" validate:"required"`
	ShiftID     string          `json:"shiftId" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentType string          `json:"paymentType"`
	Items       []OrderItem     `json:"items"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// OrderItem is one line of a sale.
type OrderItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func (o *Order) RecordID() string      { return o.ID }
func (o *Order) PreferredName() string { return "" }
