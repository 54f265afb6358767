package payroll

import "errors"

var (
	ErrRunNotFound        = errors.New("payroll run not found")
	ErrRunAlreadyExists   = errors.New("payroll run for this period already exists")
	ErrRunFinalized       = errors.New("payroll run for this period is already finalized")
	ErrMalformedStructure = errors.New("salary structure assignment is malformed")
	ErrItemNotFound       = errors.New("payroll item not found")
	ErrNoItemsForEmployee = errors.New("no payroll items for employee in this run")
)
