package salary

import "errors"

var (
	ErrComponentNotFound   = errors.New("salary component not found")
	ErrComponentCodeExists = errors.New("salary component code already exists")
	ErrAssignmentNotFound  = errors.New("salary structure assignment not found")
)
