package dto

import "github.com/Wellify-Group/wellify-business-sub000/internal/model"

type CreateLocationRequest struct {
	Name    string `json:"name"    validate:"required,min=1,max=100"`
	Address string `json:"address" validate:"omitempty,max=200"`
}

type UpdateLocationRequest struct {
	Name      *string `json:"name"       validate:"omitempty,min=1,max=100"`
	Address   *string `json:"address"    validate:"omitempty,max=200"`
	ManagerID *string `json:"manager_id"` // "" clears the manager
	Status    *string `json:"status"     validate:"omitempty,oneof=active inactive"`
}

type LocationResponse struct {
	ID         string  `json:"id"`
	BusinessID string  `json:"business_id"`
	Name       string  `json:"name"`
	Address    string  `json:"address,omitempty"`
	AccessCode string  `json:"access_code,omitempty"`
	ManagerID  *string `json:"manager_id"`
	Status     string  `json:"status,omitempty"`
}

func NewLocationResponse(l *model.Location) LocationResponse {
	return LocationResponse{
		ID:         l.ID,
		BusinessID: l.BusinessID,
		Name:       l.Name,
		Address:    l.Address,
		AccessCode: l.AccessCode,
		ManagerID:  l.ManagerID,
		Status:     l.Status,
	}
}
