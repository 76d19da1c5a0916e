package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift statuses.
const (
	ShiftActive = "active"
	ShiftClosed = "closed"
)

// Report generation states for the async end-of-shift PDF report.
const (
	ReportPending = "pending"
	ReportDone    = "done"
	ReportError   = "error"
)

// Shift is one worked period of one employee at one location.
// An employee's "active shift" is the record with Status == active and no
// ClockOut; there should be at most one at any time.
type Shift struct {
	ID          string          `json:"id" validate:"required"`
	EmployeeID  string          `json:"employeeId" validate:"required"`
	LocationID  string          `json:"locationId" validate:"required"`
	Date        string          `json:"date"` // YYYY-MM-DD
	ClockIn     *time.Time      `json:"clockIn"`
	ClockOut    *time.Time      `json:"clockOut"`
	RevenueCash decimal.Decimal `json:"revenueCash"`
	RevenueCard decimal.Decimal `json:"revenueCard"`
	Status      string          `json:"status"`

	// Async report bookkeeping (worker pool + retry cron)
	ReportStatus  string     `json:"reportStatus,omitempty"`
	ReportPath    *string    `json:"reportPath,omitempty"`
	ReportRetries int        `json:"reportRetries,omitempty"`
	NextReportAt  *time.Time `json:"nextReportAt,omitempty"`
	LastReportErr *string    `json:"lastReportErr,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Shift) RecordID() string { return s.ID }

// Shifts are filed by ID — no human-readable name, no rename semantics.
func (s *Shift) PreferredName() string { return "" }
