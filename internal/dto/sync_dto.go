package dto

// SyncResponse is the aggregate payload a signed-in client pulls to hydrate
// its local state: the user, their business's locations, and — directors
// only — the staff roster and every location's shifts. An unknown user gets
// the zero aggregate, never an error.
type SyncResponse struct {
	User      *UserResponse      `json:"user"`
	Locations []LocationResponse `json:"locations"`
	Employees []UserResponse     `json:"employees"`
	Managers  []UserResponse     `json:"managers"`
	Shifts    []ShiftResponse    `json:"shifts"`
}

// EmptySyncResponse is returned when the requested user does not exist.
func EmptySyncResponse() *SyncResponse {
	return &SyncResponse{
		Locations: []LocationResponse{},
		Employees: []UserResponse{},
		Managers:  []UserResponse{},
		Shifts:    []ShiftResponse{},
	}
}
