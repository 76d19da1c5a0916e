package model

import "time"

// Roles partition the users directory; each role is its own sub-directory.
const (
	RoleDirector = "director"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User stores one authenticated actor.
// Directors own a business (BusinessID is usually their own ID) and carry the
// 16-digit company code used for employee terminal login. Employees carry a
// 4-digit PIN and may be pinned to a single location via AssignedPointID.
type User struct {
	ID           string  `json:"id" validate:"required"`
	Role         string  `json:"role" validate:"required,oneof=director manager employee"`
	FullName     string  `json:"fullName"`
	Email        string  `json:"email,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	PasswordHash string  `json:"passwordHash,omitempty"`
	PIN          string  `json:"pin,omitempty"`
	BusinessID   string  `json:"businessId,omitempty"`
	CompanyCode  string  `json:"companyCode,omitempty"`
	// AssignedPointID restricts an employee to a specific location; nil = any
	AssignedPointID *string   `json:"assignedPointId"`
	Status          string    `json:"status,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (u *User) RecordID() string { return u.ID }

// PreferredName drives the on-disk filename: full name, else email.
// The store falls back to the ID when both are empty.
func (u *User) PreferredName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Email
}

// OwnedBusinessID is the tenant a director owns: their BusinessID when set,
// otherwise their own ID.
func (u *User) OwnedBusinessID() string {
	if u.BusinessID != "" {
		return u.BusinessID
	}
	return u.ID
}
