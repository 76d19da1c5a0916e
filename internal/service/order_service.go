package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/Wellify-Group/wellify-business-sub000/internal/dto"
	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/repository"
)

type OrderService interface {
	// Create records a sale against the employee's active shift.
	Create(ctx context.Context, employeeID string, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	ListByShift(ctx context.Context, shiftID string) ([]dto.OrderResponse, error)
	ListByLocation(ctx context.Context, businessID, locationID string) ([]dto.OrderResponse, error)
}

type orderService struct {
	orders    repository.OrderRepository
	shifts    repository.ShiftRepository
	locations repository.LocationRepository
}

func NewOrderService(orders repository.OrderRepository, shifts repository.ShiftRepository, locations repository.LocationRepository) OrderService {
	return &orderService{orders: orders, shifts: shifts, locations: locations}
}

func (s *orderService) Create(ctx context.Context, employeeID string, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	shift, err := s.shifts.FindActive(ctx, employeeID, "")
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, ErrNoActiveShift
	}

	items := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = model.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
			Subtotal: item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		}
	}

	order := &model.Order{
		ID:          uuid.New().String(),
		EmployeeID:  employeeID,
		LocationID:  shift.LocationID,
		ShiftID:     shift.ID,
		Amount:      req.Amount,
		PaymentType: req.PaymentType,
		Items:       items,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, err
	}
	log.Info().Str("order_id", order.ID).Str("shift_id", shift.ID).Msg("order recorded")
	resp := dto.NewOrderResponse(order)
	return &resp, nil
}

func (s *orderService) ListByShift(ctx context.Context, shiftID string) ([]dto.OrderResponse, error) {
	orders, err := s.orders.ListByShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	return orderResponses(orders), nil
}

func (s *orderService) ListByLocation(ctx context.Context, businessID, locationID string) ([]dto.OrderResponse, error) {
	location, err := s.locations.FindByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if location == nil || repository.NormalizeCode(location.BusinessID) != repository.NormalizeCode(businessID) {
		return nil, ErrNotFound
	}
	orders, err := s.orders.ListByLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return orderResponses(orders), nil
}

func orderResponses(orders []model.Order) []dto.OrderResponse {
	resp := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		resp[i] = dto.NewOrderResponse(&orders[i])
	}
	return resp
}
