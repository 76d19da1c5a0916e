package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
)

type OrderItemRequest struct {
	Name     string          `json:"name"     validate:"required,min=1,max=100"`
	Quantity int             `json:"quantity" validate:"required,gt=0"`
	Price    decimal.Decimal `json:"price"    validate:"min=0"`
}

type CreateOrderRequest struct {
	Amount      decimal.Decimal    `json:"amount"       validate:"gt=0"`
	PaymentType string             `json:"payment_type" validate:"required,oneof=cash card"`
	Items       []OrderItemRequest `json:"items"        validate:"required,min=1,dive"`
}

type OrderResponse struct {
	ID          string            `json:"id"`
	EmployeeID  string            `json:"employee_id"`
	LocationID  string            `json:"location_id"`
	ShiftID     string            `json:"shift_id"`
	Amount      decimal.Decimal   `json:"amount"`
	PaymentType string            `json:"payment_type"`
	Items       []model.OrderItem `json:"items"`
	CreatedAt   time.Time         `json:"created_at"`
}

func NewOrderResponse(o *model.Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID,
		EmployeeID:  o.EmployeeID,
		LocationID:  o.LocationID,
		ShiftID:     o.ShiftID,
		Amount:      o.Amount,
		PaymentType: o.PaymentType,
		Items:       o.Items,
		CreatedAt:   o.CreatedAt,
	}
}
