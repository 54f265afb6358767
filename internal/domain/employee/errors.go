package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrIdentityNoExists   = errors.New("identity number already registered")
	ErrInvalidStatus      = errors.New("invalid employment status")
)
