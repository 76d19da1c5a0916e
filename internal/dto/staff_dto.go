package dto

// CreateStaffRequest adds a manager (password login) or an employee
// (PIN terminal login) to the caller's business.
type CreateStaffRequest struct {
	Role            string `json:"role"              validate:"required,oneof=manager employee"`
	FullName        string `json:"full_name"         validate:"required,min=2,max=100"`
	Email           string `json:"email"             validate:"omitempty,email"`
	Phone           string `json:"phone"             validate:"omitempty,min=5,max=20"`
	Password        string `json:"password"          validate:"required_if=Role manager,omitempty,min=8"`
	PIN             string `json:"pin"               validate:"required_if=Role employee,omitempty,len=4,numeric"`
	AssignedPointID string `json:"assigned_point_id" validate:"omitempty,uuid4"`
}

type UpdateStaffRequest struct {
	FullName        *string `json:"full_name"         validate:"omitempty,min=2,max=100"`
	Email           *string `json:"email"             validate:"omitempty,email"`
	Phone           *string `json:"phone"             validate:"omitempty,max=20"`
	Password        *string `json:"password"          validate:"omitempty,min=8"`
	PIN             *string `json:"pin"               validate:"omitempty,len=4,numeric"`
	AssignedPointID *string `json:"assigned_point_id"` // "" clears the assignment
	Status          *string `json:"status"            validate:"omitempty,oneof=active inactive"`
}
