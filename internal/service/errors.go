package service

import "errors"

// Sentinel errors the handlers translate into HTTP statuses. Credential
// failures are deliberately indistinct: "no such user" and "wrong secret"
// both surface as ErrInvalidCredentials so responses cannot be used to
// enumerate accounts. Logs carry the distinction.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrShiftAlreadyOpen   = errors.New("employee already has an active shift")
	ErrShiftNotActive     = errors.New("shift is not active")
	ErrNoActiveShift      = errors.New("no active shift")
	ErrWrongLocation      = errors.New("employee is assigned to a different location")
)
