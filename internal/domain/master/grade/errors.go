package grade

import "errors"

var (
	ErrGradeNotFound     = errors.New("grade not found")
	ErrGradeNameExists   = errors.New("grade with this name already exists")
	ErrInvalidSalaryBand = errors.New("min salary must not exceed max salary")
)
