package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Wellify-Group/wellify-business-sub000/internal/model"
)

type ClockInRequest struct {
	LocationID string `json:"location_id" validate:"required,uuid4"`
}

type ClockOutRequest struct {
	RevenueCash decimal.Decimal `json:"revenue_cash" validate:"min=0"`
	RevenueCard decimal.Decimal `json:"revenue_card" validate:"min=0"`
}

type ShiftResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	LocationID  string          `json:"location_id"`
	Date        string          `json:"date"`
	ClockIn     *time.Time      `json:"clock_in"`
	ClockOut    *time.Time      `json:"clock_out"`
	RevenueCash decimal.Decimal `json:"revenue_cash"`
	RevenueCard decimal.Decimal `json:"revenue_card"`
	Status      string          `json:"status"`
	ReportPath  *string         `json:"report_path,omitempty"`
}

func NewShiftResponse(s *model.Shift) ShiftResponse {
	return ShiftResponse{
		ID:          s.ID,
		EmployeeID:  s.EmployeeID,
		LocationID:  s.LocationID,
		Date:        s.Date,
		ClockIn:     s.ClockIn,
		ClockOut:    s.ClockOut,
		RevenueCash: s.RevenueCash,
		RevenueCard: s.RevenueCard,
		Status:      s.Status,
		ReportPath:  s.ReportPath,
	}
}
