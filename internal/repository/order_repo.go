package repository

import (
	"context"

	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
	"github.com/Wellify-Group/wellify-business-sub000/internal/store"
)

// Orders are append-only: saved once at creation, never patched here.
type OrderRepository interface {
	Save(ctx context.Context, o *model.Order) error
	ListByShift(ctx context.Context, shiftID string) ([]model.Order, error)
	ListByLocation(ctx context.Context, locationID string) ([]model.Order, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]model.Order, error)
}

type orderRepo struct{ st store.Store }

func NewOrderRepository(st store.Store) OrderRepository { return &orderRepo{st: st} }

func (r *orderRepo) Save(ctx context.Context, o *model.Order) error {
	return r.st.Write(ctx, ordersDir, o)
}

func (r *orderRepo) ListByShift(ctx context.Context, shiftID string) ([]model.Order, error) {
	return r.list(ctx, func(o *model.Order) bool { return o.ShiftID == shiftID })
}

func (r *orderRepo) ListByLocation(ctx context.Context, locationID string) ([]model.Order, error) {
	return r.list(ctx, func(o *model.Order) bool { return o.LocationID == locationID })
}

func (r *orderRepo) ListByEmployee(ctx context.Context, employeeID string) ([]model.Order, error) {
	return r.list(ctx, func(o *model.Order) bool { return o.EmployeeID == employeeID })
}

func (r *orderRepo) list(ctx context.Context, match func(*model.Order) bool) ([]model.Order, error) {
	var orders []model.Order
	err := r.st.Scan(ctx, ordersDir, func(raw []byte) error {
		o, ok := decode[model.Order](raw, ordersDir)
		if ok && match(o) {
			orders = append(orders, *o)
		}
		return nil
	})
	return orders, err
}
