package dto

// TerminalLoginRequest is the employee code + PIN login. Code accepts a
// company code or a location access code, dashed or not.
type TerminalLoginRequest struct {
	Code string `json:"code" validate:"required,min=16,max=19"`
	PIN  string `json:"pin"  validate:"required,len=4,numeric"`
}

type TerminalLoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        UserResponse `json:"user"`
}

type ResolveCodeRequest struct {
	Code string `json:"code" validate:"required,min=16,max=19"`
}

// Access-code result discriminators.
const (
	CodeTypeBusiness = "business"
	CodeTypeLocation = "location"
)

// AccessCodeResult is the discriminated outcome of resolving a 16-digit code:
// a business (director company code) or a single location (access code).
type AccessCodeResult struct {
	Type       string `json:"type"` // business | location
	ID         string `json:"id"`
	Name       string `json:"name"`
	OwnerID    string `json:"owner_id,omitempty"`    // business only
	BusinessID string `json:"business_id,omitempty"` // location only
}
