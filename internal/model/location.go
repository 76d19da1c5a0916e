package model

import "time"

// Location is one physical point of a business. The name drives the on-disk
// filename; AccessCode is a location-scoped 16-digit terminal login code,
// drawn from a different pool than director company codes.
type Location struct {
	ID         string    `json:"id" validate:"required"`
	BusinessID string    `json:"businessId" validate:"required"`
	Name       string    `json:"name"`
	Address    string    `json:"address,omitempty"`
	AccessCode string    `json:"accessCode,omitempty"`
	ManagerID  *string   `json:"managerId"`
	Status     string    `json:"status,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (l *Location) RecordID() string      { return l.ID }
func (l *Location) PreferredName() string { return l.Name }
