package dto

import "github.com/Wellify-Group/wellify-business-sub000/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// LoginRequest is the dashboard (director/manager) password login.
type LoginRequest struct {
	Role       string `json:"role"       validate:"required,oneof=director manager"`
	Identifier string `json:"identifier" validate:"required,min=3"` // email or phone
	Password   string `json:"password"   validate:"required,min=4"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SignupRequest registers a new director. A company code and business scope
// are minted server-side.
type SignupRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Email    string `json:"email"     validate:"required,email"`
	Phone    string `json:"phone"     validate:"omitempty,min=5,max=20"`
	Password string `json:"password"  validate:"required,min=8"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID              string  `json:"id"`
	Role            string  `json:"role"`
	FullName        string  `json:"full_name"`
	Email           string  `json:"email,omitempty"`
	Phone           string  `json:"phone,omitempty"`
	BusinessID      string  `json:"business_id,omitempty"`
	CompanyCode     string  `json:"company_code,omitempty"`
	AssignedPointID *string `json:"assigned_point_id"`
	Status          string  `json:"status,omitempty"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"` // seconds
	User         UserResponse `json:"user"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Role:            u.Role,
		FullName:        u.FullName,
		Email:           u.Email,
		Phone:           u.Phone,
		BusinessID:      u.BusinessID,
		CompanyCode:     u.CompanyCode,
		AssignedPointID: u.AssignedPointID,
		Status:          u.Status,
	}
}
